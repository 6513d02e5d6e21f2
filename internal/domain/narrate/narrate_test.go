package narrate_test

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/prospect/internal/domain/model"
	"github.com/okian/prospect/internal/domain/narrate"
)

func TestCompanyRelevance(t *testing.T) {
	Convey("Given the default narrator", t, func() {
		n := narrate.New()

		Convey("Relevant materials produce a material point", func() {
			out := n.CompanyRelevance(model.Company{Name: "A", Materials: []string{"Vinyl", "PVC"}})
			So(out, ShouldContainSubstring, "Vinyl, PVC")
			So(out, ShouldContainSubstring, "Tedlar")
			So(out, ShouldEndWith, ".")
		})

		Convey("Relevant target markets produce a market point", func() {
			out := n.CompanyRelevance(model.Company{Name: "A", TargetMarkets: []string{"Outdoor", "Retail"}})
			So(out, ShouldContainSubstring, "stand out in the Outdoor, Retail markets")
		})

		Convey("Relevant technologies produce a process point", func() {
			out := n.CompanyRelevance(model.Company{Name: "A", Technologies: []string{"Digital Printing"}})
			So(out, ShouldContainSubstring, "compatible with your Digital Printing processes")
		})

		Convey("A score above the ICP threshold adds the profile point", func() {
			out := n.CompanyRelevance(model.Company{Name: "A", CompanyScore: 0.8})
			So(out, ShouldContainSubstring, "ideal customer profile")
		})

		Convey("A score at the threshold does not", func() {
			out := n.CompanyRelevance(model.Company{Name: "A", CompanyScore: 0.7})
			So(out, ShouldNotContainSubstring, "ideal customer profile")
		})

		Convey("Multiple points are joined into sentences", func() {
			out := n.CompanyRelevance(model.Company{
				Name:          "A",
				Materials:     []string{"Vinyl"},
				TargetMarkets: []string{"Outdoor"},
				CompanyScore:  0.9,
			})
			So(strings.Count(out, ". "), ShouldEqual, 2)
		})

		Convey("No signal at all yields the generic fallback", func() {
			out := n.CompanyRelevance(model.Company{Name: "A", Materials: []string{"Steel"}})
			So(out, ShouldContainSubstring, "durability and weather resistance")
			So(out, ShouldContainSubstring, "Tedlar")
		})

		Convey("Narration never alters the record's score", func() {
			c := model.Company{Name: "A", CompanyScore: 0.42}
			_ = n.CompanyRelevance(c)
			So(c.CompanyScore.Float64(), ShouldEqual, 0.42)
		})
	})

	Convey("Given a narrator with a custom product name", t, func() {
		n := narrate.New(narrate.WithProductName("Shield"))
		out := n.CompanyRelevance(model.Company{Name: "A", Materials: []string{"Vinyl"}})
		So(out, ShouldContainSubstring, "Shield")
		So(out, ShouldNotContainSubstring, "Tedlar")
	})

	Convey("Given a narrator with a lower ICP threshold", t, func() {
		n := narrate.New(narrate.WithICPThreshold(0.4))
		out := n.CompanyRelevance(model.Company{Name: "A", CompanyScore: 0.5})
		So(out, ShouldContainSubstring, "ideal customer profile")
	})
}

func TestStakeholderRelevance(t *testing.T) {
	Convey("Given the default narrator", t, func() {
		n := narrate.New()

		Convey("Product-development titles get the innovation point", func() {
			out := n.StakeholderRelevance(
				model.Stakeholder{Name: "X", Title: "VP of Product Development"}, model.Company{})
			So(out, ShouldContainSubstring, "product development")
		})

		Convey("Procurement titles get the cost-benefit point", func() {
			out := n.StakeholderRelevance(
				model.Stakeholder{Name: "X", Title: "Director of Procurement"}, model.Company{})
			So(out, ShouldContainSubstring, "procurement decision-maker")
		})

		Convey("Technical titles get the expertise point", func() {
			out := n.StakeholderRelevance(
				model.Stakeholder{Name: "X", Title: "Chief Technology Officer"}, model.Company{})
			So(out, ShouldContainSubstring, "technical expertise")
		})

		Convey("A matched strong company adds the fit point", func() {
			out := n.StakeholderRelevance(
				model.Stakeholder{Name: "X", CompanyMatch: true},
				model.Company{CompanyScore: 0.9})
			So(out, ShouldContainSubstring, "ideal fit")
		})

		Convey("An unmatched strong company does not", func() {
			out := n.StakeholderRelevance(
				model.Stakeholder{Name: "X", CompanyMatch: false},
				model.Company{CompanyScore: 0.9})
			So(out, ShouldNotContainSubstring, "ideal fit")
		})

		Convey("Signage products add the durability point", func() {
			out := n.StakeholderRelevance(
				model.Stakeholder{Name: "X"},
				model.Company{Products: []string{"Signage"}})
			So(out, ShouldContainSubstring, "durability of your signage products")
		})

		Convey("Display products are the fallback product point", func() {
			out := n.StakeholderRelevance(
				model.Stakeholder{Name: "X"},
				model.Company{Products: []string{"Retail Displays"}})
			So(out, ShouldContainSubstring, "display solutions")
		})

		Convey("No signal yields the generic fallback", func() {
			out := n.StakeholderRelevance(
				model.Stakeholder{Name: "X", Title: "Accountant"}, model.Company{})
			So(out, ShouldContainSubstring, "professional background")
		})
	})
}
