package services

import (
	"errors"
	"hash/fnv"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "flexicoach/internal/errors"
	"flexicoach/internal/models"
	"flexicoach/internal/pagination"
)

// lockStripes bounds the number of per-key mutexes.
const lockStripes = 64

// challengeService owns the challenge state machine. Transitions for one
// (user, challenge) pair are serialized through a striped mutex and then
// applied inside a database transaction, so the status check, progress
// write, and completion stamp commit atomically.
type challengeService struct {
	db    *gorm.DB
	locks [lockStripes]sync.Mutex
}

// NewChallengeService creates a new ChallengeServicer.
func NewChallengeService(db *gorm.DB) ChallengeServicer {
	return &challengeService{db: db}
}

// missingChallengeErr distinguishes an identifier outside the template
// catalog from a real template that was never offered to this user.
func missingChallengeErr(challengeID string) error {
	if !KnownTemplateID(challengeID) {
		return apperrors.ErrUnknownTemplate
	}
	return apperrors.ErrChallengeNotFound
}

// lock returns the stripe mutex for a (user, challenge) key.
func (s *challengeService) lock(userID, challengeID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(challengeID))
	return &s.locks[h.Sum32()%lockStripes]
}

// Offer instantiates a challenge from a template in not_started state.
// Offering the same template twice for the same user returns the existing
// instance regardless of its status.
func (s *challengeService) Offer(userID string, tmpl models.ChallengeTemplate) (*models.Challenge, error) {
	mu := s.lock(userID, tmpl.ID)
	mu.Lock()
	defer mu.Unlock()

	var challenge models.Challenge
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND challenge_id = ?", userID, tmpl.ID).First(&challenge).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		challenge = models.Challenge{
			UserID:      userID,
			ChallengeID: tmpl.ID,
			Title:       tmpl.Title,
			Description: tmpl.Description,
			Difficulty:  tmpl.Difficulty,
			Target:      tmpl.Target,
			Current:     tmpl.InitialCurrent,
			Reward:      tmpl.Reward,
			Points:      tmpl.Points,
			Status:      models.ChallengeStatusNotStarted,
		}
		if err := tx.Create(&challenge).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}

// Accept moves a not_started challenge to active, zeroing its progress and
// stamping started_at. Any other starting status is rejected with
// InvalidTransition; the current stored record is returned alongside the
// error so concurrent duplicate accepts observe the already-active result
// instead of corrupting state.
func (s *challengeService) Accept(userID, challengeID string) (*models.Challenge, error) {
	mu := s.lock(userID, challengeID)
	mu.Lock()
	defer mu.Unlock()

	var challenge models.Challenge
	var transitionErr error
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND challenge_id = ?", userID, challengeID).First(&challenge).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return missingChallengeErr(challengeID)
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if challenge.Status != models.ChallengeStatusNotStarted {
			transitionErr = apperrors.WithMessage(apperrors.ErrInvalidTransition,
				"Cannot accept challenge: status is "+string(challenge.Status))
			return nil
		}

		now := time.Now().UTC()
		challenge.Status = models.ChallengeStatusActive
		challenge.Current = decimal.Zero
		challenge.StartedAt = &now

		if err := tx.Model(&challenge).Updates(map[string]interface{}{
			"status":     challenge.Status,
			"current":    challenge.Current,
			"started_at": challenge.StartedAt,
		}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if transitionErr != nil {
		return &challenge, transitionErr
	}
	return &challenge, nil
}

// UpdateProgress sets the current progress of an active challenge.
// Progress is monotonic: a decrease is rejected, since none of the catalog
// challenges model a resettable metric. When the new value reaches the
// target, the completion transition is applied in the same write.
func (s *challengeService) UpdateProgress(userID, challengeID string, current decimal.Decimal) (*models.Challenge, error) {
	mu := s.lock(userID, challengeID)
	mu.Lock()
	defer mu.Unlock()

	var challenge models.Challenge
	var transitionErr error
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND challenge_id = ?", userID, challengeID).First(&challenge).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return missingChallengeErr(challengeID)
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		switch challenge.Status {
		case models.ChallengeStatusNotStarted:
			transitionErr = apperrors.WithMessage(apperrors.ErrInvalidTransition,
				"Cannot update progress: challenge has not been accepted (status is not_started)")
			return nil
		case models.ChallengeStatusCompleted:
			transitionErr = apperrors.WithMessage(apperrors.ErrInvalidTransition,
				"Cannot update progress: challenge is already completed")
			return nil
		}

		if current.LessThan(challenge.Current) {
			transitionErr = apperrors.WithMessage(apperrors.ErrProgressDecreased,
				"Progress cannot decrease from "+challenge.Current.String()+" to "+current.String())
			return nil
		}

		updates := map[string]interface{}{"current": current}
		challenge.Current = current

		if current.GreaterThanOrEqual(challenge.Target) {
			now := time.Now().UTC()
			challenge.Status = models.ChallengeStatusCompleted
			challenge.CompletedAt = &now
			updates["status"] = challenge.Status
			updates["completed_at"] = challenge.CompletedAt
		}

		if err := tx.Model(&challenge).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if transitionErr != nil {
		return &challenge, transitionErr
	}
	return &challenge, nil
}

// Get returns one challenge for the user.
func (s *challengeService) Get(userID, challengeID string) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := s.db.Where("user_id = ? AND challenge_id = ?", userID, challengeID).First(&challenge).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, missingChallengeErr(challengeID)
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &challenge, nil
}

// List returns the user's active and completed challenges, ordered by
// started_at and completed_at ascending respectively.
func (s *challengeService) List(userID string) (*ChallengeList, error) {
	var active []models.Challenge
	if err := s.db.Where("user_id = ? AND status = ?", userID, models.ChallengeStatusActive).
		Order("started_at ASC").Find(&active).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var completed []models.Challenge
	if err := s.db.Where("user_id = ? AND status = ?", userID, models.ChallengeStatusCompleted).
		Order("completed_at ASC").Find(&completed).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if active == nil {
		active = []models.Challenge{}
	}
	if completed == nil {
		completed = []models.Challenge{}
	}
	return &ChallengeList{Active: active, Completed: completed}, nil
}

// All returns every challenge for the user in creation order, for snapshot
// assembly.
func (s *challengeService) All(userID string) ([]models.Challenge, error) {
	var challenges []models.Challenge
	if err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&challenges).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if challenges == nil {
		challenges = []models.Challenge{}
	}
	return challenges, nil
}

// History returns a paginated listing of the user's challenge records,
// optionally narrowed by status and difficulty.
func (s *challengeService) History(userID string, filter ChallengeFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Challenge], error) {
	page.Defaults()

	base := s.db.Model(&models.Challenge{}).Where("user_id = ?", userID)
	if filter.Status != "" {
		base = base.Where("status = ?", filter.Status)
	}
	if filter.Difficulty != "" {
		base = base.Where("difficulty = ?", filter.Difficulty)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var challenges []models.Challenge
	if err := base.Order("created_at ASC").Scopes(pagination.Paginate(page)).Find(&challenges).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(challenges, page.Page, page.PageSize, totalItems)
	return &result, nil
}
