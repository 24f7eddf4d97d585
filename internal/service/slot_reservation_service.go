package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/domain/repository"
	"clinic-appointment-service/internal/scheduling"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrSlotReserved is returned when another booking holds the slot key.
var ErrSlotReserved = errors.New("slot is already reserved")

// releaseIfOwnerScript deletes a slot key only when the caller still owns
// it, so a stale release can never drop a reservation made by someone else.
var releaseIfOwnerScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

const (
	// Redis key prefix for slot reservations
	slotKeyPrefix = "slot:"

	// A pending reservation expires if the booking transaction never
	// confirms it (crash between reserve and insert).
	pendingReservationTTL = 30 * time.Second

	// Batch size for startup sync - process 500 records at a time
	slotSyncBatchSize = 500
)

// SlotReservationService arbitrates concurrent bookings of the same
// (date, time) slot through Redis, in front of the database's unique index.
// The in-memory availability scan stays an optimistic precheck; racing
// writers are serialized here first and by the index last.
type SlotReservationService struct {
	db              *gorm.DB
	redisClient     *redis.Client
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository

	// Cancelled appointments keep their reservation unless the clinic
	// policy frees cancelled slots.
	cancelledFreesSlot bool
}

func NewSlotReservationService(
	db *gorm.DB,
	redisClient *redis.Client,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	cancelledFreesSlot bool,
) *SlotReservationService {
	return &SlotReservationService{
		db:                 db,
		redisClient:        redisClient,
		log:                log,
		appointmentRepo:    appointmentRepo,
		cancelledFreesSlot: cancelledFreesSlot,
	}
}

func slotKey(date, timeOfDay string) string {
	return fmt.Sprintf("%s%s:%s", slotKeyPrefix, scheduling.NormalizeDate(date), scheduling.NormalizeTime(timeOfDay))
}

// Reserve claims the slot with the given owner token. Returns
// ErrSlotReserved when another owner already holds it. The claim expires on
// its own unless Confirm is called.
func (s *SlotReservationService) Reserve(ctx context.Context, date, timeOfDay, owner string) error {
	ok, err := s.redisClient.SetNX(ctx, slotKey(date, timeOfDay), owner, pendingReservationTTL).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrSlotReserved
	}
	return nil
}

// Confirm pins the reservation to the persisted appointment id, removing
// the pending expiry.
func (s *SlotReservationService) Confirm(ctx context.Context, date, timeOfDay, appointmentID string) error {
	return s.redisClient.Set(ctx, slotKey(date, timeOfDay), appointmentID, 0).Err()
}

// Release frees the slot when the given owner still holds it. Safe to call
// after a lost race: a key claimed by someone else is left alone.
func (s *SlotReservationService) Release(ctx context.Context, date, timeOfDay, owner string) error {
	return releaseIfOwnerScript.Run(ctx, s.redisClient, []string{slotKey(date, timeOfDay)}, owner).Err()
}

// SyncFromDatabase rebuilds the slot keys from the appointments table.
// Called at startup so Redis state survives restarts and flushes. Batches
// are pipelined individually to keep memory bounded on large tables.
func (s *SlotReservationService) SyncFromDatabase(ctx context.Context) error {
	total := 0

	err := s.appointmentRepo.FindAllInBatches(s.db.WithContext(ctx), slotSyncBatchSize, func(batch []entity.Appointment) error {
		pipe := s.redisClient.Pipeline()
		for _, apt := range batch {
			if s.cancelledFreesSlot && apt.IsCancelled() {
				continue
			}
			pipe.Set(ctx, slotKey(apt.Date, apt.Time), apt.ID.String(), 0)
			total++
		}
		_, err := pipe.Exec(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to sync slot reservations: %w", err)
	}

	s.log.Infof("Slot reservations synced from database: %d slots", total)
	return nil
}
