package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	service "github.com/okian/prospect/internal/app"
	"github.com/okian/prospect/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleBatch(id string) model.Batch {
	return model.Batch{
		BatchID: id,
		Companies: []model.Company{
			{
				Name:          "Acme Graphics",
				Website:       "https://acmegraphics.example",
				Description:   "Large format printing and vehicle wraps for outdoor signage",
				Industry:      "Graphics and Signage",
				EmployeeCount: 1200,
				Products:      []string{"vehicle wraps", "banners"},
				Materials:     []string{"vinyl"},
			},
			{
				Name:          "Budget Prints",
				Description:   "Small local print shop",
				Industry:      "Printing",
				EmployeeCount: 8,
			},
		},
		Stakeholders: []model.Stakeholder{
			{Name: "Jo Smith", Title: "CEO", CompanyName: "Acme Graphics"},
			{Name: "Pat Jones", Title: "Production Manager", CompanyName: "Budget Prints"},
			{Name: "Sam Low", Title: "Intern", CompanyName: "Unknown Co"},
		},
	}
}

func waitForBatch(ctx context.Context, svc *service.Service, batchID string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		stats := svc.GetStats()
		if stats["batchID"] == batchID {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

func TestServiceIntegration(t *testing.T) {
	Convey("Given a service with full integration", t, func() {
		svc := service.New(
			service.WithWorkerCount(2),
			service.WithQueueSize(1000),
			service.WithDedupeSize(500),
		)
		defer svc.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := svc.Start(ctx)
		So(err, ShouldBeNil)

		Convey("When processing a batch end-to-end", func() {
			b := sampleBatch("batch-1")
			So(svc.SeenAndRecord(ctx, b.BatchID), ShouldBeFalse)
			So(svc.Enqueue(ctx, b), ShouldBeTrue)
			So(waitForBatch(ctx, svc, "batch-1", 5*time.Second), ShouldBeTrue)

			Convey("Then the served snapshot should hold the assembled leads", func() {
				leads, err := svc.TopN(ctx, 10)
				So(err, ShouldBeNil)
				// Sam Low's company join misses and unmatched leads are
				// dropped by default.
				So(len(leads), ShouldEqual, 2)

				// CEO of the strongest company ranks first.
				So(leads[0].Name, ShouldEqual, "Jo Smith")
				So(leads[0].LeadID, ShouldEqual, "LEAD-0001")
				So(leads[0].Tier, ShouldEqual, model.Tier1)

				for i := 1; i < len(leads); i++ {
					So(leads[i-1].LeadScore, ShouldBeGreaterThanOrEqualTo, leads[i].LeadScore)
				}
			})

			Convey("And individual leads should be retrievable", func() {
				l, err := svc.Lead(ctx, "LEAD-0001")
				So(err, ShouldBeNil)
				So(l.Name, ShouldEqual, "Jo Smith")
				So(l.OutreachMessage, ShouldNotBeEmpty)
				So(l.Relevance, ShouldNotBeEmpty)
			})

			Convey("And scored companies should be retrievable", func() {
				companies, err := svc.Companies(ctx, 10)
				So(err, ShouldBeNil)
				So(len(companies), ShouldEqual, 2)
				So(companies[0].Name, ShouldEqual, "Acme Graphics")
				So(companies[0].CompanyScore, ShouldBeGreaterThan, companies[1].CompanyScore)
			})

			Convey("And tier counts should cover all assembled leads", func() {
				tiers := svc.TierCounts(ctx)
				total := 0
				for _, n := range tiers {
					total += n
				}
				So(total, ShouldEqual, 2)
			})

			Convey("And duplicate batch IDs should be detected", func() {
				So(svc.SeenAndRecord(ctx, "batch-1"), ShouldBeTrue)
			})
		})

		Convey("When a batch keeps unmatched leads", func() {
			keeper := service.New(
				service.WithWorkerCount(1),
				service.WithKeepUnmatchedLeads(true),
			)
			defer keeper.Stop()
			So(keeper.Start(ctx), ShouldBeNil)

			b := sampleBatch("batch-keep")
			So(keeper.Enqueue(ctx, b), ShouldBeTrue)
			So(waitForBatch(ctx, keeper, "batch-keep", 5*time.Second), ShouldBeTrue)

			Convey("Then the unmatched stakeholder should survive assembly", func() {
				leads, err := keeper.TopN(ctx, 10)
				So(err, ShouldBeNil)
				So(len(leads), ShouldEqual, 3)

				var unmatched *model.Lead
				for i := range leads {
					if !leads[i].CompanyMatch {
						unmatched = &leads[i]
					}
				}
				So(unmatched, ShouldNotBeNil)
				So(unmatched.Name, ShouldEqual, "Sam Low")
			})
		})

		Convey("When handling service lifecycle", func() {
			svc.Stop()
			stats := svc.GetStats()
			So(stats["started"], ShouldEqual, false)

			So(svc.Start(ctx), ShouldBeNil)
			stats = svc.GetStats()
			So(stats["started"], ShouldEqual, true)
		})
	})
}

func TestServiceConcurrency(t *testing.T) {
	Convey("Given a service with concurrent operations", t, func() {
		svc := service.New(
			service.WithWorkerCount(4),
			service.WithQueueSize(2000),
			service.WithDedupeSize(1000),
		)
		defer svc.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		So(svc.Start(ctx), ShouldBeNil)

		Convey("When multiple goroutines enqueue batches concurrently", func() {
			numGoroutines := 10
			batchesPerGoroutine := 20
			done := make(chan bool, numGoroutines)

			for i := 0; i < numGoroutines; i++ {
				go func(goroutineID int) {
					for j := 0; j < batchesPerGoroutine; j++ {
						b := sampleBatch(fmt.Sprintf("concurrent-%d-%d", goroutineID, j))
						svc.Enqueue(ctx, b)
					}
					done <- true
				}(i)
			}

			for i := 0; i < numGoroutines; i++ {
				<-done
			}

			// Give workers time to drain the queue
			time.Sleep(2 * time.Second)

			Convey("Then the service should still serve a complete snapshot", func() {
				stats := svc.GetStats()
				So(stats["started"], ShouldEqual, true)

				leads, err := svc.TopN(ctx, 10)
				So(err, ShouldBeNil)
				So(len(leads), ShouldBeGreaterThan, 0)
			})
		})

		Convey("When multiple goroutines query the snapshot concurrently", func() {
			So(svc.Enqueue(ctx, sampleBatch("query-batch")), ShouldBeTrue)
			So(waitForBatch(ctx, svc, "query-batch", 5*time.Second), ShouldBeTrue)

			numGoroutines := 20
			done := make(chan bool, numGoroutines)
			errs := make(chan error, numGoroutines*20)

			for i := 0; i < numGoroutines; i++ {
				go func() {
					for j := 0; j < 10; j++ {
						leads, err := svc.TopN(ctx, 10)
						if err != nil {
							errs <- err
							continue
						}
						if len(leads) > 0 {
							if _, err := svc.Lead(ctx, leads[0].LeadID); err != nil {
								errs <- err
							}
						}
						_ = svc.TierCounts(ctx)
					}
					done <- true
				}()
			}

			for i := 0; i < numGoroutines; i++ {
				<-done
			}

			Convey("Then all queries should succeed", func() {
				select {
				case err := <-errs:
					So(err, ShouldBeNil)
				default:
					So(true, ShouldBeTrue)
				}
			})
		})
	})
}

func TestServiceErrorHandling(t *testing.T) {
	Convey("Given a service with error conditions", t, func() {
		svc := service.New(
			service.WithWorkerCount(1),
			service.WithQueueSize(2), // Small queue to test backpressure
			service.WithDedupeSize(5),
		)
		defer svc.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		So(svc.Start(ctx), ShouldBeNil)

		Convey("When enqueueing batches beyond queue capacity", func() {
			successCount := 0
			for i := 0; i < 50; i++ {
				if svc.Enqueue(ctx, sampleBatch(fmt.Sprintf("backpressure-%d", i))) {
					successCount++
				}
			}

			Convey("Then at least the first batches should be accepted", func() {
				So(successCount, ShouldBeGreaterThan, 0)
			})
		})

		Convey("When querying a non-existent lead", func() {
			l, err := svc.Lead(ctx, "LEAD-9999")

			Convey("Then it should return an error", func() {
				So(err, ShouldNotBeNil)
				So(l.LeadID, ShouldEqual, "")
			})
		})

		Convey("When querying with invalid limits", func() {
			leads, err := svc.TopN(ctx, 0)
			So(err, ShouldNotBeNil)
			So(leads, ShouldBeNil)

			leads, err = svc.TopN(ctx, -1)
			So(err, ShouldNotBeNil)
			So(leads, ShouldBeNil)
		})
	})
}
