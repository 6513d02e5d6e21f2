package repository_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	repository "github.com/okian/prospect/internal/adapters/repository"
	model "github.com/okian/prospect/internal/domain/model"
	score "github.com/okian/prospect/internal/domain/score"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleResult() model.Result {
	return model.Result{
		BatchID:     "batch-1",
		ProcessedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Companies: []model.Company{
			{ID: "c1", Name: "Acme Graphics", CompanyScore: score.Value(1.0)},
			{ID: "c2", Name: "Budget Prints", CompanyScore: score.Value(0.4)},
			{ID: "c3", Name: "SignCo", CompanyScore: score.Value(0.7)},
		},
		Stakeholders: []model.Stakeholder{
			{ID: "s1", Name: "Jo Smith"},
			{ID: "s2", Name: "Pat Jones"},
		},
		Leads: []model.Lead{
			{LeadID: "LEAD-0001", Name: "Jo Smith", LeadScore: score.Value(0.95), Tier: model.Tier1},
			{LeadID: "LEAD-0002", Name: "Pat Jones", LeadScore: score.Value(0.52), Tier: model.Tier2},
			{LeadID: "LEAD-0003", Name: "Sam Low", LeadScore: score.Value(0.21), Tier: model.Tier3},
		},
	}
}

func TestMemStore(t *testing.T) {
	Convey("Given an empty MemStore", t, func() {
		s := repository.NewMemStore(repository.WithMetricsEnabled(false))
		ctx := context.Background()

		Convey("Then it should serve an empty snapshot", func() {
			So(s.Count(ctx), ShouldEqual, 0)

			leads, err := s.TopN(ctx, 10)
			So(err, ShouldBeNil)
			So(leads, ShouldBeEmpty)

			So(s.TierCounts(ctx), ShouldBeEmpty)
		})

		Convey("When looking up an unknown lead", func() {
			_, err := s.Lead(ctx, "LEAD-0001")

			Convey("Then it should return ErrNotFound", func() {
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When replacing with a processed batch", func() {
			So(s.Replace(ctx, sampleResult()), ShouldBeNil)

			Convey("Then TopN should serve leads in stored order", func() {
				leads, err := s.TopN(ctx, 2)
				So(err, ShouldBeNil)
				So(leads, ShouldHaveLength, 2)
				So(leads[0].LeadID, ShouldEqual, "LEAD-0001")
				So(leads[1].LeadID, ShouldEqual, "LEAD-0002")
			})

			Convey("And TopN should clamp to the snapshot size", func() {
				leads, err := s.TopN(ctx, 100)
				So(err, ShouldBeNil)
				So(leads, ShouldHaveLength, 3)
			})

			Convey("And Lead should find stored leads by ID", func() {
				l, err := s.Lead(ctx, "LEAD-0002")
				So(err, ShouldBeNil)
				So(l.Name, ShouldEqual, "Pat Jones")
			})

			Convey("And Companies should be ordered by company score desc", func() {
				companies, err := s.Companies(ctx, 10)
				So(err, ShouldBeNil)
				So(companies, ShouldHaveLength, 3)
				So(companies[0].Name, ShouldEqual, "Acme Graphics")
				So(companies[1].Name, ShouldEqual, "SignCo")
				So(companies[2].Name, ShouldEqual, "Budget Prints")
			})

			Convey("And tier counts should reflect the snapshot", func() {
				tiers := s.TierCounts(ctx)
				So(tiers[model.Tier1], ShouldEqual, 1)
				So(tiers[model.Tier2], ShouldEqual, 1)
				So(tiers[model.Tier3], ShouldEqual, 1)
			})

			Convey("And Stats should summarize the batch", func() {
				stats := s.Stats(ctx)
				So(stats.BatchID, ShouldEqual, "batch-1")
				So(stats.Companies, ShouldEqual, 3)
				So(stats.Stakeholders, ShouldEqual, 2)
				So(stats.Leads, ShouldEqual, 3)
			})
		})

		Convey("When asking for a non-positive limit", func() {
			_, err := s.TopN(ctx, 0)
			So(errors.Is(err, repository.ErrInvalidLimit), ShouldBeTrue)

			_, err = s.Companies(ctx, -1)
			So(errors.Is(err, repository.ErrInvalidLimit), ShouldBeTrue)
		})
	})
}

func TestMemStoreReplaceSwapsWholeSnapshot(t *testing.T) {
	Convey("Given a store with a served batch", t, func() {
		s := repository.NewMemStore(repository.WithMetricsEnabled(false))
		ctx := context.Background()
		So(s.Replace(ctx, sampleResult()), ShouldBeNil)

		Convey("When a new batch replaces it", func() {
			next := model.Result{
				BatchID: "batch-2",
				Leads: []model.Lead{
					{LeadID: "LEAD-0001", Name: "New Lead", LeadScore: score.Value(0.8), Tier: model.Tier1},
				},
			}
			So(s.Replace(ctx, next), ShouldBeNil)

			Convey("Then old leads should be gone", func() {
				So(s.Count(ctx), ShouldEqual, 1)

				_, err := s.Lead(ctx, "LEAD-0003")
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)

				l, err := s.Lead(ctx, "LEAD-0001")
				So(err, ShouldBeNil)
				So(l.Name, ShouldEqual, "New Lead")
			})
		})
	})
}

func TestMemStoreConcurrentAccess(t *testing.T) {
	Convey("Given concurrent readers and writers", t, func() {
		s := repository.NewMemStore(repository.WithMetricsEnabled(false))
		ctx := context.Background()

		var wg sync.WaitGroup
		for i := range 10 {
			wg.Add(2)
			go func(i int) {
				defer wg.Done()
				r := sampleResult()
				r.BatchID = fmt.Sprintf("batch-%d", i)
				_ = s.Replace(ctx, r)
			}(i)
			go func() {
				defer wg.Done()
				_, _ = s.TopN(ctx, 3)
				_ = s.TierCounts(ctx)
				_ = s.Count(ctx)
			}()
		}
		wg.Wait()

		Convey("Then the final snapshot should be complete", func() {
			So(s.Count(ctx), ShouldEqual, 3)
		})
	})
}
