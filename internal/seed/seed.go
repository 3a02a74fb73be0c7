// Package seed performs the one-time population of rooms, the cleaning
// schedule and a handful of sample complaints on a fresh store.
package seed

import (
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"hosteltrack/backend/internal/config"
	"hosteltrack/backend/internal/models"
	"hosteltrack/backend/internal/repo"
)

// Run populates the fixed data set unless the persisted guard flag is
// already set. Clearing the flag externally causes a full overwrite on the
// next run, not a merge.
func Run(r *repo.Repos) {
	if r.Initialized() {
		return
	}

	r.ReplaceRooms(buildRooms())
	r.ReplaceCleaningSchedule(buildCleaningSchedule())
	r.ReplaceComplaints(sampleComplaints())
	r.MarkInitialized()

	r.Log.Info("store seeded",
		zap.Int("rooms", len(config.Blocks)*config.FloorsPerBlock*config.RoomsPerFloor),
		zap.Int("cleaning_slots", len(config.Blocks)*config.FloorsPerBlock*len(config.CleaningDays)))
}

func buildRooms() []models.Room {
	var rooms []models.Room
	for _, block := range config.Blocks {
		for floor := 1; floor <= config.FloorsPerBlock; floor++ {
			for num := 1; num <= config.RoomsPerFloor; num++ {
				status := models.RoomAvailable
				if rand.Float64() < config.OccupiedProbability {
					status = models.RoomOccupied
				}
				rooms = append(rooms, models.Room{
					Block:  block,
					Room:   fmt.Sprintf("%s%d%02d", block, floor, num),
					Floor:  floor,
					Status: status,
				})
			}
		}
	}
	return rooms
}

func buildCleaningSchedule() []models.CleaningEntry {
	var entries []models.CleaningEntry
	for _, block := range config.Blocks {
		for floor := 1; floor <= config.FloorsPerBlock; floor++ {
			// Lower floors are cleaned in the early slot.
			slot := "08:00 AM"
			if floor > 2 {
				slot = "09:30 AM"
			}
			for _, day := range config.CleaningDays {
				entries = append(entries, models.CleaningEntry{
					ID:        fmt.Sprintf("%sF%d-%s", block, floor, day),
					Block:     block,
					Floor:     floor,
					Day:       day,
					Time:      slot,
					Completed: false,
				})
			}
		}
	}
	return entries
}

// sampleComplaints are the demonstration records every fresh install starts
// with, aged between half a day and three days.
func sampleComplaints() []models.Complaint {
	now := time.Now()
	return []models.Complaint{
		{ID: "S001", Block: "B", Room: "B102", Category: "Plumbing", Description: "Leaking tap in bathroom", Status: models.StatusSubmitted, Timestamp: now.Add(-24 * time.Hour), Priority: 1},
		{ID: "S002", Block: "C", Room: "C205", Category: "Electrical", Description: "Tube light flickering", Status: models.StatusInProgress, Timestamp: now.Add(-48 * time.Hour), Priority: 1},
		{ID: "S003", Block: "B", Room: "B310", Category: "AC", Description: "AC not cooling, making unusual noise", Anonymous: true, Status: models.StatusSeen, Timestamp: now.Add(-12 * time.Hour), Priority: 1},
		{ID: "S004", Block: "C", Room: "C108", Category: "Housekeeping", Description: "Room not cleaned for 2 days", Status: models.StatusResolved, Timestamp: now.Add(-72 * time.Hour), Priority: 1},
	}
}
