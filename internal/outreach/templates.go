package outreach

// Subject and body templates per message type. Variables come from
// templateData; all fields are pre-defaulted so a sparse record still
// renders a complete message.

const initialSubject = `{{.Product}} for {{.Company}}'s {{.Industry}} Applications`

const initialBody = `Dear {{.Name}},

I hope this message finds you well. I noticed {{.Company}}'s impressive work in the {{.Industry}} industry, particularly your {{.ProductsOrServices}}.

I'm reaching out because {{.Product}} films offer unique benefits for graphics and signage applications that might align with your needs:

- Long-lasting durability (10+ years outdoor life)
- Superior chemical resistance
- Excellent UV protection
- Graffiti resistance
- Easy cleaning and maintenance

Would you be interested in discussing how {{.Product}} could enhance your {{.SpecificApplication}} projects? I'd be happy to share some case studies or arrange a sample for you to evaluate.

Best regards,
The {{.Product}} Graphics & Signage Team`

const followUpSubject = `Following up: {{.Product}} for {{.Company}}`

const followUpBody = `Dear {{.Name}},

I wanted to follow up on my previous message about how {{.Product}} films could benefit {{.Company}}'s {{.Industry}} applications.

Recently, we've helped companies similar to yours achieve improved durability and reduced maintenance costs with our {{.Product}} solutions.

I'd welcome the opportunity to discuss your specific needs and how our products might address them. Would you have 15 minutes for a quick call next week?

Best regards,
The {{.Product}} Graphics & Signage Team`

const eventSubject = `Meeting at {{.EventName}}? {{.Product}} innovations`

const eventBody = `Dear {{.Name}},

I noticed that {{.Company}} will be attending {{.EventName}}. Our {{.Product}} team will also be there showcasing our latest innovations for the {{.Industry}} industry.

Given your role as {{.Title}} and {{.Company}}'s focus on {{.ProductsOrServices}}, I thought you might be interested in seeing how our {{.Product}} films can provide superior protection and longevity for graphics and signage applications.

Would you be available for a brief meeting at the event? I'd be happy to schedule a specific time that works for your agenda.

Best regards,
The {{.Product}} Graphics & Signage Team`
