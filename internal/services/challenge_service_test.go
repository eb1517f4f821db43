package services

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"flexicoach/internal/models"
	"flexicoach/internal/pagination"
	"flexicoach/internal/testutil"
)

func paginationRequest(page, size int) pagination.PageRequest {
	return pagination.PageRequest{Page: page, PageSize: size}
}

func sampleTemplate(id string, target float64) models.ChallengeTemplate {
	return models.ChallengeTemplate{
		ID:             id,
		Title:          "No-Spend Challenge",
		Description:    "Try for more no-spend days this month.",
		Difficulty:     models.ChallengeDifficultyMedium,
		Target:         decimal.NewFromFloat(target),
		InitialCurrent: decimal.Zero,
		Reward:         "Painless monthly savings",
		Points:         150,
	}
}

func TestOffer(t *testing.T) {
	t.Run("creates_not_started", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChallengeService(db)
		userID := testutil.NewTestUserID()

		challenge, err := svc.Offer(userID, sampleTemplate("no_spend_days", 10))
		testutil.AssertNoError(t, err)

		if challenge.Status != models.ChallengeStatusNotStarted {
			t.Errorf("expected not_started, got %s", challenge.Status)
		}
		if challenge.RecordID == "" {
			t.Error("expected a record ID")
		}
		if challenge.StartedAt != nil {
			t.Error("an offered challenge must not have a start time")
		}
	})

	t.Run("idempotent_per_user_and_template", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChallengeService(db)
		userID := testutil.NewTestUserID()

		first, err := svc.Offer(userID, sampleTemplate("no_spend_days", 10))
		testutil.AssertNoError(t, err)
		second, err := svc.Offer(userID, sampleTemplate("no_spend_days", 12))
		testutil.AssertNoError(t, err)

		if first.RecordID != second.RecordID {
			t.Error("expected the same stored challenge on a repeat offer")
		}
		// The original target survives a re-offer.
		if !second.Target.Equal(decimal.NewFromInt(10)) {
			t.Errorf("expected target 10, got %s", second.Target)
		}
	})

	t.Run("reoffer_preserves_progress", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChallengeService(db)
		userID := testutil.NewTestUserID()

		_, err := svc.Offer(userID, sampleTemplate("no_spend_days", 10))
		testutil.AssertNoError(t, err)
		_, err = svc.Accept(userID, "no_spend_days")
		testutil.AssertNoError(t, err)
		_, err = svc.UpdateProgress(userID, "no_spend_days", decimal.NewFromInt(4))
		testutil.AssertNoError(t, err)

		again, err := svc.Offer(userID, sampleTemplate("no_spend_days", 10))
		testutil.AssertNoError(t, err)
		if again.Status != models.ChallengeStatusActive {
			t.Errorf("expected the active challenge back, got %s", again.Status)
		}
		if !again.Current.Equal(decimal.NewFromInt(4)) {
			t.Errorf("expected progress 4 preserved, got %s", again.Current)
		}
	})

	t.Run("isolated_per_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChallengeService(db)

		a, err := svc.Offer(testutil.NewTestUserID(), sampleTemplate("no_spend_days", 10))
		testutil.AssertNoError(t, err)
		b, err := svc.Offer(testutil.NewTestUserID(), sampleTemplate("no_spend_days", 10))
		testutil.AssertNoError(t, err)

		if a.RecordID == b.RecordID {
			t.Error("expected separate records per user")
		}
	})
}

func TestAccept(t *testing.T) {
	t.Run("starts_challenge", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChallengeService(db)
		userID := testutil.NewTestUserID()
		testutil.CreateTestChallenge(t, db, userID, "no_spend_days", 10)

		challenge, err := svc.Accept(userID, "no_spend_days")
		testutil.AssertNoError(t, err)

		if challenge.Status != models.ChallengeStatusActive {
			t.Errorf("expected active, got %s", challenge.Status)
		}
		if challenge.StartedAt == nil {
			t.Error("expected started_at to be stamped")
		}
		if !challenge.Current.IsZero() {
			t.Errorf("expected progress reset to zero, got %s", challenge.Current)
		}
	})

	t.Run("unknown_template", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChallengeService(db)

		_, err := svc.Accept(testutil.NewTestUserID(), "nope")
		testutil.AssertAppError(t, err, "UNKNOWN_TEMPLATE")
	})

	t.Run("known_template_never_offered", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChallengeService(db)

		_, err := svc.Accept(testutil.NewTestUserID(), "daily_limit")
		testutil.AssertAppError(t, err, "CHALLENGE_NOT_FOUND")
	})

	t.Run("double_accept_rejected_with_current_state", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChallengeService(db)
		userID := testutil.NewTestUserID()
		testutil.CreateTestChallenge(t, db, userID, "no_spend_days", 10)

		_, err := svc.Accept(userID, "no_spend_days")
		testutil.AssertNoError(t, err)

		challenge, err := svc.Accept(userID, "no_spend_days")
		testutil.AssertAppError(t, err, "INVALID_TRANSITION")
		if challenge == nil || challenge.Status != models.ChallengeStatusActive {
			t.Error("expected the stored active record alongside the error")
		}
	})

	t.Run("completed_cannot_restart", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChallengeService(db)
		userID := testutil.NewTestUserID()
		testutil.CreateTestChallenge(t, db, userID, "no_spend_days", 5)

		_, err := svc.Accept(userID, "no_spend_days")
		testutil.AssertNoError(t, err)
		_, err = svc.UpdateProgress(userID, "no_spend_days", decimal.NewFromInt(5))
		testutil.AssertNoError(t, err)

		_, err = svc.Accept(userID, "no_spend_days")
		testutil.AssertAppError(t, err, "INVALID_TRANSITION")
	})

	t.Run("concurrent_accepts_one_winner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChallengeService(db)
		userID := testutil.NewTestUserID()
		testutil.CreateTestChallenge(t, db, userID, "no_spend_days", 10)

		const attempts = 8
		var wg sync.WaitGroup
		errs := make([]error, attempts)
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = svc.Accept(userID, "no_spend_days")
			}(i)
		}
		wg.Wait()

		var successes int
		for _, err := range errs {
			if err == nil {
				successes++
			} else {
				testutil.AssertAppError(t, err, "INVALID_TRANSITION")
			}
		}
		if successes != 1 {
			t.Errorf("expected exactly one successful accept, got %d", successes)
		}

		stored, err := svc.Get(userID, "no_spend_days")
		testutil.AssertNoError(t, err)
		if stored.Status != models.ChallengeStatusActive {
			t.Errorf("expected active after the dust settles, got %s", stored.Status)
		}
	})
}

func TestUpdateProgress(t *testing.T) {
	setup := func(t *testing.T) (ChallengeServicer, string, func()) {
		db := testutil.SetupTestDB(t)
		svc := NewChallengeService(db)
		userID := testutil.NewTestUserID()
		testutil.CreateTestChallenge(t, db, userID, "no_spend_days", 10)
		return svc, userID, func() { testutil.TeardownTestDB(t, db) }
	}

	t.Run("advances_progress", func(t *testing.T) {
		svc, userID, teardown := setup(t)
		defer teardown()

		_, err := svc.Accept(userID, "no_spend_days")
		testutil.AssertNoError(t, err)

		challenge, err := svc.UpdateProgress(userID, "no_spend_days", decimal.NewFromInt(4))
		testutil.AssertNoError(t, err)

		if !challenge.Current.Equal(decimal.NewFromInt(4)) {
			t.Errorf("expected progress 4, got %s", challenge.Current)
		}
		if challenge.Status != models.ChallengeStatusActive {
			t.Errorf("expected still active, got %s", challenge.Status)
		}
	})

	t.Run("before_accept_rejected", func(t *testing.T) {
		svc, userID, teardown := setup(t)
		defer teardown()

		_, err := svc.UpdateProgress(userID, "no_spend_days", decimal.NewFromInt(1))
		testutil.AssertAppError(t, err, "INVALID_TRANSITION")
	})

	t.Run("monotonic", func(t *testing.T) {
		svc, userID, teardown := setup(t)
		defer teardown()

		_, err := svc.Accept(userID, "no_spend_days")
		testutil.AssertNoError(t, err)
		_, err = svc.UpdateProgress(userID, "no_spend_days", decimal.NewFromInt(6))
		testutil.AssertNoError(t, err)

		_, err = svc.UpdateProgress(userID, "no_spend_days", decimal.NewFromInt(5))
		testutil.AssertAppError(t, err, "PROGRESS_DECREASED")

		// Repeating the same value is allowed.
		challenge, err := svc.UpdateProgress(userID, "no_spend_days", decimal.NewFromInt(6))
		testutil.AssertNoError(t, err)
		if !challenge.Current.Equal(decimal.NewFromInt(6)) {
			t.Errorf("expected progress 6, got %s", challenge.Current)
		}
	})

	t.Run("completion_on_target", func(t *testing.T) {
		svc, userID, teardown := setup(t)
		defer teardown()

		_, err := svc.Accept(userID, "no_spend_days")
		testutil.AssertNoError(t, err)

		challenge, err := svc.UpdateProgress(userID, "no_spend_days", decimal.NewFromInt(10))
		testutil.AssertNoError(t, err)

		if challenge.Status != models.ChallengeStatusCompleted {
			t.Errorf("expected completed, got %s", challenge.Status)
		}
		if challenge.CompletedAt == nil {
			t.Error("expected completed_at stamped in the same write")
		}

		// The completion transition and stamp must be visible together.
		stored, err := svc.Get(userID, "no_spend_days")
		testutil.AssertNoError(t, err)
		if stored.Status != models.ChallengeStatusCompleted || stored.CompletedAt == nil {
			t.Error("expected stored record completed with a timestamp")
		}
	})

	t.Run("overshoot_completes", func(t *testing.T) {
		svc, userID, teardown := setup(t)
		defer teardown()

		_, err := svc.Accept(userID, "no_spend_days")
		testutil.AssertNoError(t, err)

		challenge, err := svc.UpdateProgress(userID, "no_spend_days", decimal.NewFromInt(15))
		testutil.AssertNoError(t, err)
		if challenge.Status != models.ChallengeStatusCompleted {
			t.Errorf("expected completed on overshoot, got %s", challenge.Status)
		}
	})

	t.Run("completed_is_terminal", func(t *testing.T) {
		svc, userID, teardown := setup(t)
		defer teardown()

		_, err := svc.Accept(userID, "no_spend_days")
		testutil.AssertNoError(t, err)
		_, err = svc.UpdateProgress(userID, "no_spend_days", decimal.NewFromInt(10))
		testutil.AssertNoError(t, err)

		_, err = svc.UpdateProgress(userID, "no_spend_days", decimal.NewFromInt(12))
		testutil.AssertAppError(t, err, "INVALID_TRANSITION")
	})
}

func TestListChallenges(t *testing.T) {
	t.Run("partitions_by_status", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChallengeService(db)
		userID := testutil.NewTestUserID()

		testutil.CreateTestChallenge(t, db, userID, "offered", 10)
		testutil.CreateTestChallenge(t, db, userID, "running", 10)
		testutil.CreateTestChallenge(t, db, userID, "done", 5)

		_, err := svc.Accept(userID, "running")
		testutil.AssertNoError(t, err)
		_, err = svc.Accept(userID, "done")
		testutil.AssertNoError(t, err)
		_, err = svc.UpdateProgress(userID, "done", decimal.NewFromInt(5))
		testutil.AssertNoError(t, err)

		list, err := svc.List(userID)
		testutil.AssertNoError(t, err)

		if len(list.Active) != 1 || list.Active[0].ChallengeID != "running" {
			t.Errorf("unexpected active list: %+v", list.Active)
		}
		if len(list.Completed) != 1 || list.Completed[0].ChallengeID != "done" {
			t.Errorf("unexpected completed list: %+v", list.Completed)
		}
	})

	t.Run("empty_lists_not_nil", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChallengeService(db)

		list, err := svc.List(testutil.NewTestUserID())
		testutil.AssertNoError(t, err)

		if list.Active == nil || list.Completed == nil {
			t.Error("expected empty slices, not nil")
		}
		if len(list.Active) != 0 || len(list.Completed) != 0 {
			t.Error("expected no challenges for an unknown user")
		}
	})
}

func TestChallengeHistory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewChallengeService(db)
	userID := testutil.NewTestUserID()

	for _, id := range []string{"a", "b", "c"} {
		testutil.CreateTestChallenge(t, db, userID, id, 10)
	}

	page, err := svc.History(userID, ChallengeFilter{}, paginationRequest(1, 2))
	testutil.AssertNoError(t, err)

	if page.TotalItems != 3 {
		t.Errorf("expected 3 total, got %d", page.TotalItems)
	}
	if len(page.Data) != 2 {
		t.Errorf("expected 2 items on page 1, got %d", len(page.Data))
	}
	if page.TotalPages != 2 {
		t.Errorf("expected 2 pages, got %d", page.TotalPages)
	}

	second, err := svc.History(userID, ChallengeFilter{}, paginationRequest(2, 2))
	testutil.AssertNoError(t, err)
	if len(second.Data) != 1 {
		t.Errorf("expected 1 item on page 2, got %d", len(second.Data))
	}
}

func TestChallengeHistoryFilters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewChallengeService(db)
	userID := testutil.NewTestUserID()

	for _, id := range []string{"a", "b", "c"} {
		testutil.CreateTestChallenge(t, db, userID, id, 10)
	}
	_, err := svc.Accept(userID, "a")
	testutil.AssertNoError(t, err)

	t.Run("by_status", func(t *testing.T) {
		page, err := svc.History(userID,
			ChallengeFilter{Status: models.ChallengeStatusActive}, paginationRequest(1, 10))
		testutil.AssertNoError(t, err)

		if page.TotalItems != 1 {
			t.Fatalf("expected 1 active challenge, got %d", page.TotalItems)
		}
		if page.Data[0].ChallengeID != "a" {
			t.Errorf("expected challenge a, got %s", page.Data[0].ChallengeID)
		}
	})

	t.Run("by_difficulty", func(t *testing.T) {
		page, err := svc.History(userID,
			ChallengeFilter{Difficulty: models.ChallengeDifficultyEasy}, paginationRequest(1, 10))
		testutil.AssertNoError(t, err)

		if page.TotalItems != 3 {
			t.Errorf("expected all 3 easy challenges, got %d", page.TotalItems)
		}

		none, err := svc.History(userID,
			ChallengeFilter{Difficulty: models.ChallengeDifficultyHard}, paginationRequest(1, 10))
		testutil.AssertNoError(t, err)
		if none.TotalItems != 0 {
			t.Errorf("expected no hard challenges, got %d", none.TotalItems)
		}
	})
}
