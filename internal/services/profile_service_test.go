package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"flexicoach/internal/models"
	"flexicoach/internal/testutil"
)

func newTestProfileService(t *testing.T) (ProfileServicer, ChallengeServicer, func()) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	challenges := NewChallengeService(db)
	profile := NewProfileService(
		NewNormalizerService(),
		NewCategorizerService(),
		NewAggregatorService(),
		NewScorerService(),
		NewTemplateService(),
		challenges,
	)
	return profile, challenges, func() { testutil.TeardownTestDB(t, db) }
}

func sampleRows() []models.RawRow {
	return []models.RawRow{
		{Line: 2, Date: "2025-11-01", Description: "Salary", Amount: "50000"},
		{Line: 3, Date: "2025-11-03", Description: "Zomato food delivery", Amount: "-500"},
		{Line: 4, Date: "2025-11-05", Description: "Swiggy dinner", Amount: "-350"},
		{Line: 5, Date: "2025-11-07", Description: "Uber ride", Amount: "-300"},
		{Line: 6, Date: "2025-11-08", Description: "Zomato lunch", Amount: "-450"},
		{Line: 7, Date: "2025-11-10", Description: "DMart groceries", Amount: "-1200"},
	}
}

func TestBuildSnapshot(t *testing.T) {
	t.Run("full_pipeline", func(t *testing.T) {
		profile, _, teardown := newTestProfileService(t)
		defer teardown()

		snapshot, err := profile.BuildSnapshot(testutil.NewTestUserID(), sampleRows())
		testutil.AssertNoError(t, err)

		if !snapshot.Summary.TotalIncome.Equal(decimal.NewFromInt(50000)) {
			t.Errorf("expected income 50000, got %s", snapshot.Summary.TotalIncome)
		}
		if !snapshot.Summary.TotalExpenses.Equal(decimal.NewFromInt(2800)) {
			t.Errorf("expected expenses 2800, got %s", snapshot.Summary.TotalExpenses)
		}
		if len(snapshot.Categories) == 0 {
			t.Error("expected category totals")
		}
		if len(snapshot.WeeklySeries) == 0 {
			t.Error("expected weekly series")
		}
		if len(snapshot.Flags) == 0 {
			t.Error("expected at least one flag")
		}
		if snapshot.RejectedCount != 0 {
			t.Errorf("expected no rejected rows, got %d", snapshot.RejectedCount)
		}
		if len(snapshot.Challenges) == 0 {
			t.Error("expected personalized challenges in the snapshot")
		}
	})

	t.Run("challenge_state_survives_reanalysis", func(t *testing.T) {
		profile, challenges, teardown := newTestProfileService(t)
		defer teardown()
		userID := testutil.NewTestUserID()

		first, err := profile.BuildSnapshot(userID, sampleRows())
		testutil.AssertNoError(t, err)
		if len(first.Challenges) == 0 {
			t.Fatal("expected challenges after first analysis")
		}

		accepted, err := challenges.Accept(userID, first.Challenges[0].ChallengeID)
		testutil.AssertNoError(t, err)

		second, err := profile.BuildSnapshot(userID, sampleRows())
		testutil.AssertNoError(t, err)

		var found bool
		for _, c := range second.Challenges {
			if c.ChallengeID == accepted.ChallengeID {
				found = true
				if c.Status != models.ChallengeStatusActive {
					t.Errorf("expected accepted challenge to stay active, got %s", c.Status)
				}
			}
		}
		if !found {
			t.Error("accepted challenge missing from the re-analysis snapshot")
		}
	})

	t.Run("reports_rejected_rows", func(t *testing.T) {
		profile, _, teardown := newTestProfileService(t)
		defer teardown()

		rows := append(sampleRows(),
			models.RawRow{Line: 8, Date: "garbage", Description: "Bad row", Amount: "-100"})

		snapshot, err := profile.BuildSnapshot(testutil.NewTestUserID(), rows)
		testutil.AssertNoError(t, err)

		if snapshot.RejectedCount != 1 {
			t.Errorf("expected 1 rejected row, got %d", snapshot.RejectedCount)
		}
		if len(snapshot.RejectedRows) != 1 || snapshot.RejectedRows[0].Line != 8 {
			t.Errorf("unexpected rejected rows: %+v", snapshot.RejectedRows)
		}
	})

	t.Run("propagates_empty_result", func(t *testing.T) {
		profile, _, teardown := newTestProfileService(t)
		defer teardown()

		rows := []models.RawRow{
			{Line: 2, Date: "bad", Description: "x", Amount: "-1"},
		}
		_, err := profile.BuildSnapshot(testutil.NewTestUserID(), rows)
		testutil.AssertAppError(t, err, "EMPTY_RESULT")
	})

	t.Run("analysis_isolated_per_user", func(t *testing.T) {
		profile, _, teardown := newTestProfileService(t)
		defer teardown()

		userA := testutil.NewTestUserID()
		userB := testutil.NewTestUserID()

		a, err := profile.BuildSnapshot(userA, sampleRows())
		testutil.AssertNoError(t, err)
		b, err := profile.BuildSnapshot(userB, sampleRows())
		testutil.AssertNoError(t, err)

		if len(a.Challenges) != len(b.Challenges) {
			t.Errorf("identical inputs should yield same-size catalogs: %d vs %d",
				len(a.Challenges), len(b.Challenges))
		}
		for i := range a.Challenges {
			if a.Challenges[i].RecordID == b.Challenges[i].RecordID {
				t.Error("users must not share challenge records")
			}
		}
	})
}
