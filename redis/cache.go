package redis

import (
	"encoding/json"
	"log"
	"time"

	"github.com/alipiodental/clinic-server/models"
)

const (
	scheduleCacheKey = "clinic:schedules"
	scheduleCacheTTL = 5 * time.Minute

	// ScheduleChangeChannel carries change notifications published after any
	// schedule mutation, so every instance drops its cached copy.
	ScheduleChangeChannel = "clinic:schedules:changed"
)

// GetCachedSchedules returns the cached schedule ranges, or false on a miss.
// Callers fall through to the database and repopulate with SetCachedSchedules.
func GetCachedSchedules() ([]models.ScheduleRange, bool) {
	raw, err := Client.Get(Ctx, scheduleCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var ranges []models.ScheduleRange
	if err := json.Unmarshal(raw, &ranges); err != nil {
		log.Printf("Dropping corrupt schedule cache: %v", err)
		Client.Del(Ctx, scheduleCacheKey)
		return nil, false
	}
	return ranges, true
}

func SetCachedSchedules(ranges []models.ScheduleRange) {
	raw, err := json.Marshal(ranges)
	if err != nil {
		log.Printf("Failed to marshal schedule cache: %v", err)
		return
	}
	if err := Client.Set(Ctx, scheduleCacheKey, raw, scheduleCacheTTL).Err(); err != nil {
		log.Printf("Failed to write schedule cache: %v", err)
	}
}

// InvalidateSchedules drops the cache and notifies other instances. Called
// after every schedule create, update and delete.
func InvalidateSchedules() {
	Client.Del(Ctx, scheduleCacheKey)
	if err := Client.Publish(Ctx, ScheduleChangeChannel, "changed").Err(); err != nil {
		log.Printf("Failed to publish schedule change: %v", err)
	}
}

// SubscribeScheduleChanges drops the local cache whenever another instance
// publishes a change. Runs until the process exits.
func SubscribeScheduleChanges() {
	sub := Client.Subscribe(Ctx, ScheduleChangeChannel)
	go func() {
		for range sub.Channel() {
			Client.Del(Ctx, scheduleCacheKey)
		}
	}()
}
