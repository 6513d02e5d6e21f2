package export_test

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	export "github.com/okian/prospect/internal/adapters/export"
	model "github.com/okian/prospect/internal/domain/model"
	score "github.com/okian/prospect/internal/domain/score"
	logging "github.com/okian/prospect/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logging.Init(); err != nil {
		panic(err)
	}
	m.Run()
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return rows
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[h] = i
	}
	return idx
}

func TestExporter(t *testing.T) {
	Convey("Given an exporter and a processed result", t, func() {
		dir := t.TempDir()
		e := export.New(dir)

		r := model.Result{
			BatchID: "batch-1",
			Companies: []model.Company{
				{
					ID:              "c1",
					Name:            "Acme Graphics",
					Website:         "https://acme.example",
					Industry:        "Graphics and Signage",
					CompanySize:     model.SizeLarge,
					EmployeeCount:   1200,
					Products:        []string{"vehicle wraps", "banners"},
					SizeScore:       score.Value(1.0),
					IndustryScore:   score.Value(1.0),
					ProductFitScore: score.Value(0.7),
					CompanyScore:    score.Value(1.0),
				},
			},
			Stakeholders: []model.Stakeholder{
				{
					ID:                  "s1",
					Name:                "Jo Smith",
					Title:               "CEO",
					CompanyName:         "Acme Graphics",
					CompanyID:           "c1",
					DecisionMakingPower: score.Value(1.0),
					CompanyScore:        score.Value(1.0),
					CompanyMatch:        true,
					StakeholderScore:    score.Value(1.0),
				},
			},
			Leads: []model.Lead{
				{
					LeadID:              "LEAD-0001",
					Name:                "Jo Smith",
					Title:               "CEO",
					Company:             "Acme Graphics",
					DecisionMakingPower: score.Value(1.0),
					CompanyScore:        score.Value(1.0),
					StakeholderScore:    score.Value(1.0),
					LeadScore:           score.Value(1.0),
					Tier:                model.Tier1,
					CompanyMatch:        true,
				},
			},
		}

		Convey("When exporting the result", func() {
			err := e.Export(context.Background(), r)
			So(err, ShouldBeNil)

			batchDir := filepath.Join(dir, "batch-1")

			Convey("Then all three artifacts should exist", func() {
				for _, name := range []string{export.CompaniesFile, export.StakeholdersFile, export.LeadsFile} {
					_, statErr := os.Stat(filepath.Join(batchDir, name))
					So(statErr, ShouldBeNil)
				}
			})

			Convey("And leads.csv should carry the scored row", func() {
				rows := readCSV(t, filepath.Join(batchDir, export.LeadsFile))
				So(len(rows), ShouldEqual, 2)

				idx := headerIndex(rows[0])
				So(rows[1][idx["lead_id"]], ShouldEqual, "LEAD-0001")
				So(rows[1][idx["lead_score"]], ShouldEqual, "1.00")
				So(rows[1][idx["tier"]], ShouldEqual, "Tier 1")
				So(rows[1][idx["company_match"]], ShouldEqual, "true")
			})

			Convey("And companies.csv should format scores to 2 decimals", func() {
				rows := readCSV(t, filepath.Join(batchDir, export.CompaniesFile))
				idx := headerIndex(rows[0])
				So(rows[1][idx["product_fit_score"]], ShouldEqual, "0.70")
				So(rows[1][idx["products"]], ShouldEqual, "vehicle wraps; banners")
				So(rows[1][idx["employee_count"]], ShouldEqual, "1200")
			})

			Convey("And empty optional columns should be omitted", func() {
				rows := readCSV(t, filepath.Join(batchDir, export.LeadsFile))
				idx := headerIndex(rows[0])
				_, hasEmail := idx["email"]
				_, hasMessage := idx["outreach_message"]
				So(hasEmail, ShouldBeFalse)
				So(hasMessage, ShouldBeFalse)

				// Title is populated, so that optional column stays.
				_, hasTitle := idx["title"]
				So(hasTitle, ShouldBeTrue)
			})
		})

		Convey("When exporting an empty result", func() {
			empty := model.Result{BatchID: "batch-empty"}
			err := e.Export(context.Background(), empty)

			Convey("Then header-only files should be written", func() {
				So(err, ShouldBeNil)
				rows := readCSV(t, filepath.Join(dir, "batch-empty", export.LeadsFile))
				So(len(rows), ShouldEqual, 1)
			})
		})

		Convey("When the export root is not writable", func() {
			blocked := export.New(filepath.Join(dir, "occupied"))
			// Occupy the path with a file so MkdirAll fails.
			So(os.WriteFile(filepath.Join(dir, "occupied"), []byte("x"), 0o644), ShouldBeNil)

			err := blocked.Export(context.Background(), r)

			Convey("Then the error should surface", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
