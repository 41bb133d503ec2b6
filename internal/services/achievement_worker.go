package services

import (
	"log"
	"sync"
	"time"

	"fittrack/internal/achievements"
	"fittrack/internal/models"
	"fittrack/internal/notify"
	"fittrack/internal/repository"
)

// AchievementWorker evaluates unlock criteria off the request path. Write
// handlers enqueue the user id after each meal/exercise/sleep insert (and the
// achievements list endpoint enqueues on load); workers pull stats from the
// store, run the pure evaluator, and persist any new unlocks.
//
// Redundant evaluation is harmless: already-unlocked achievements are
// filtered before evaluation and the store's unique index absorbs concurrent
// duplicate inserts.
type AchievementWorker struct {
	achievementRepo     repository.AchievementRepository
	userAchievementRepo repository.UserAchievementRepository
	mealRepo            repository.MealRepository
	exerciseRepo        repository.ExerciseRepository
	sleepRepo           repository.SleepRepository

	hub       *RealtimeHub
	publisher *notify.Publisher

	queue       chan uint
	workerCount int
	stopChan    chan struct{}
	wg          sync.WaitGroup
	running     bool
	mu          sync.Mutex
}

func NewAchievementWorker(
	achievementRepo repository.AchievementRepository,
	userAchievementRepo repository.UserAchievementRepository,
	mealRepo repository.MealRepository,
	exerciseRepo repository.ExerciseRepository,
	sleepRepo repository.SleepRepository,
	hub *RealtimeHub,
	publisher *notify.Publisher,
	workerCount int,
) *AchievementWorker {
	if workerCount <= 0 {
		workerCount = 2
	}

	return &AchievementWorker{
		achievementRepo:     achievementRepo,
		userAchievementRepo: userAchievementRepo,
		mealRepo:            mealRepo,
		exerciseRepo:        exerciseRepo,
		sleepRepo:           sleepRepo,
		hub:                 hub,
		publisher:           publisher,
		queue:               make(chan uint, 100),
		workerCount:         workerCount,
		stopChan:            make(chan struct{}),
	}
}

func (w *AchievementWorker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}
	w.running = true

	for i := 0; i < w.workerCount; i++ {
		w.wg.Add(1)
		go w.run(i)
	}
	log.Printf("Achievement worker started with %d workers", w.workerCount)
}

func (w *AchievementWorker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	w.running = false

	close(w.stopChan)
	w.wg.Wait()
	log.Println("Achievement worker stopped")
}

// Enqueue requests an evaluation pass for the user. Non-blocking: if the
// queue is full the request is dropped and the next write triggers it again.
func (w *AchievementWorker) Enqueue(userID uint) {
	select {
	case w.queue <- userID:
	default:
		log.Printf("Achievement queue full, dropping evaluation for user %d", userID)
	}
}

func (w *AchievementWorker) run(id int) {
	defer w.wg.Done()
	for {
		select {
		case <-w.stopChan:
			return
		case userID := <-w.queue:
			if err := w.Evaluate(userID); err != nil {
				log.Printf("Worker %d: achievement evaluation failed for user %d: %v", id, userID, err)
			}
		}
	}
}

// Evaluate runs one full pass for the user: load the catalog and unlocked
// set, gather stats, unlock whatever is newly earned.
func (w *AchievementWorker) Evaluate(userID uint) error {
	catalog, err := w.achievementRepo.FindAll()
	if err != nil {
		return err
	}
	unlocked, err := w.userAchievementRepo.UnlockedIDs(userID)
	if err != nil {
		return err
	}

	pending := achievements.Pending(catalog, unlocked)
	if len(pending) == 0 {
		return nil
	}

	stats, err := w.gatherStats(userID)
	if err != nil {
		return err
	}

	var firstErr error
	for _, a := range pending {
		if !achievements.ShouldUnlock(a, stats) {
			continue
		}
		inserted, err := w.userAchievementRepo.Unlock(userID, a.ID)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if !inserted {
			// Lost the race to a concurrent evaluation; nothing to announce.
			continue
		}
		log.Printf("User %d unlocked achievement %q", userID, a.Name)
		w.announce(userID, a)
	}
	return firstErr
}

func (w *AchievementWorker) gatherStats(userID uint) (achievements.Stats, error) {
	var stats achievements.Stats
	var err error

	if stats.MealCount, err = w.mealRepo.CountByUserID(userID); err != nil {
		return stats, err
	}
	if stats.WorkoutCount, err = w.exerciseRepo.CountByUserID(userID); err != nil {
		return stats, err
	}
	if stats.TotalExerciseMinutes, err = w.exerciseRepo.SumDurationByUserID(userID); err != nil {
		return stats, err
	}

	today := time.Now()
	if stats.HasMealToday, err = w.mealRepo.ExistsForDate(userID, today); err != nil {
		return stats, err
	}
	if stats.HasExerciseToday, err = w.exerciseRepo.ExistsForDate(userID, today); err != nil {
		return stats, err
	}
	if stats.HasSleepToday, err = w.sleepRepo.ExistsForDate(userID, today); err != nil {
		return stats, err
	}
	return stats, nil
}

type unlockNotification struct {
	Type        string `json:"type"`
	Achievement struct {
		ID          uint   `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"achievement"`
}

func (w *AchievementWorker) announce(userID uint, a models.Achievement) {
	if w.hub != nil {
		n := unlockNotification{Type: "achievement_unlocked"}
		n.Achievement.ID = a.ID
		n.Achievement.Name = a.Name
		n.Achievement.Description = a.Description
		n.Achievement.Icon = a.Icon
		w.hub.Broadcast(userID, n)
	}
	if w.publisher != nil {
		if err := w.publisher.PublishUnlock(userID, a); err != nil {
			log.Printf("Failed to publish unlock event for user %d: %v", userID, err)
		}
	}
}
