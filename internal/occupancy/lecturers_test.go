package occupancy_test

import (
	"testing"
	"time"

	"github.com/navikt/lecturerooms/internal/models"
	"github.com/navikt/lecturerooms/internal/occupancy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoRooms() occupancy.State {
	return occupancy.State{
		Rooms: []models.Room{{Number: "A101"}, {Number: "A102"}},
	}
}

func checkIn(t *testing.T, s occupancy.State, name, room, id string) occupancy.State {
	t.Helper()
	next, out := occupancy.CheckIn(s, models.CheckInForm{Name: name, RoomNumber: room}, id, time.Now())
	require.NoError(t, out.Err)
	return next
}

// occupancyConsistent checks that a room is occupied iff exactly one lecturer references it
func occupancyConsistent(t *testing.T, s occupancy.State) {
	t.Helper()
	for _, r := range s.Rooms {
		count := 0
		for _, l := range s.Lecturers {
			if l.RoomNumber == r.Number {
				count++
			}
		}
		assert.Equal(t, r.IsOccupied, count == 1, "room %s occupied=%v with %d lecturers", r.Number, r.IsOccupied, count)
		assert.LessOrEqual(t, count, 1)
	}
}

func TestCheckIn(t *testing.T) {
	now := time.Date(2025, 5, 9, 9, 0, 0, 0, time.UTC)

	t.Run("AssignsRoom", func(t *testing.T) {
		form := models.CheckInForm{Name: "Dr. Lee", RoomNumber: "A101", Department: "Physics", Email: "lee@uni.test"}
		next, out := occupancy.CheckIn(twoRooms(), form, "id-1", now)

		require.True(t, out.OK())
		assert.Equal(t, "Lecturer successfully checked in", out.Message)
		require.Len(t, next.Lecturers, 1)
		lee := next.Lecturers[0]
		assert.Equal(t, "id-1", lee.ID)
		assert.Equal(t, now, lee.CheckInDate)
		assert.Equal(t, "Physics", lee.Department)
		room, _ := next.FindRoom("A101")
		assert.True(t, room.IsOccupied)
		occupancyConsistent(t, next)
	})

	t.Run("RejectsNameDifferingOnlyByCase", func(t *testing.T) {
		s := checkIn(t, twoRooms(), "Dr. Lee", "A101", "id-1")

		next, out := occupancy.CheckIn(s, models.CheckInForm{Name: "dr. lee", RoomNumber: "A102"}, "id-2", now)
		assert.ErrorIs(t, out.Err, occupancy.ErrAlreadyCheckedIn)
		assert.Equal(t, s, next)
	})

	t.Run("RejectsUnknownRoom", func(t *testing.T) {
		_, out := occupancy.CheckIn(twoRooms(), models.CheckInForm{Name: "Dr. Lee", RoomNumber: "Z1"}, "id-1", now)
		assert.ErrorIs(t, out.Err, occupancy.ErrInvalidRoom)
		assert.Equal(t, "Invalid room number", out.Notice(now).Message)
	})

	t.Run("RejectsOccupiedRoom", func(t *testing.T) {
		s := checkIn(t, twoRooms(), "Dr. Lee", "A101", "id-1")

		next, out := occupancy.CheckIn(s, models.CheckInForm{Name: "Dr. Kim", RoomNumber: "A101"}, "id-2", now)
		assert.ErrorIs(t, out.Err, occupancy.ErrRoomTaken)
		assert.Equal(t, s.Rooms, next.Rooms)
		assert.Equal(t, s.Lecturers, next.Lecturers)
	})

	t.Run("NameCheckedBeforeRoom", func(t *testing.T) {
		s := checkIn(t, twoRooms(), "Dr. Lee", "A101", "id-1")

		_, out := occupancy.CheckIn(s, models.CheckInForm{Name: "DR. LEE", RoomNumber: "Z1"}, "id-2", now)
		assert.ErrorIs(t, out.Err, occupancy.ErrAlreadyCheckedIn)
	})
}

func TestCheckOut(t *testing.T) {
	t.Run("ByName", func(t *testing.T) {
		s := checkIn(t, twoRooms(), "Dr. Lee", "A101", "id-1")

		next, out := occupancy.CheckOut(s, "DR. LEE")
		require.True(t, out.OK())
		assert.Equal(t, "Lecturer successfully checked out", out.Message)
		assert.Empty(t, next.Lecturers)
		room, _ := next.FindRoom("A101")
		assert.False(t, room.IsOccupied)
	})

	t.Run("ByID", func(t *testing.T) {
		s := checkIn(t, twoRooms(), "Dr. Lee", "A101", "id-1")
		s = checkIn(t, s, "Dr. Kim", "A102", "id-2")

		next, out := occupancy.CheckOutByID(s, "id-2")
		require.True(t, out.OK())
		require.Len(t, next.Lecturers, 1)
		assert.Equal(t, "id-1", next.Lecturers[0].ID)
		occupancyConsistent(t, next)
	})

	t.Run("UnknownLecturer", func(t *testing.T) {
		s := checkIn(t, twoRooms(), "Dr. Lee", "A101", "id-1")

		next, out := occupancy.CheckOut(s, "Dr. Kim")
		assert.ErrorIs(t, out.Err, occupancy.ErrLecturerNotFound)
		assert.Equal(t, s, next)

		_, out = occupancy.CheckOutByID(s, "missing")
		assert.ErrorIs(t, out.Err, occupancy.ErrLecturerNotFound)
	})

	t.Run("RoomGoneIsIgnored", func(t *testing.T) {
		s := checkIn(t, twoRooms(), "Dr. Lee", "A101", "id-1")
		s.Rooms = []models.Room{{Number: "A102"}}

		next, out := occupancy.CheckOutByID(s, "id-1")
		require.True(t, out.OK())
		assert.Empty(t, next.Lecturers)
		assert.Equal(t, []models.Room{{Number: "A102"}}, next.Rooms)
	})
}

func TestEditLecturer(t *testing.T) {
	base := checkIn(t, twoRooms(), "Dr. Lee", "A101", "id-1")
	lee, _ := base.FindLecturer("id-1")

	t.Run("UpdatesDetailsKeepingIdentity", func(t *testing.T) {
		next, out := occupancy.EditLecturer(base, "id-1", models.LecturerUpdate{
			Name: "Dr. Lee Min", RoomNumber: "A101", Phone: "12345678",
		})
		require.True(t, out.OK())
		assert.Equal(t, "Lecturer details updated successfully", out.Message)

		updated, _ := next.FindLecturer("id-1")
		assert.Equal(t, "Dr. Lee Min", updated.Name)
		assert.Equal(t, "12345678", updated.Phone)
		assert.Equal(t, lee.CheckInDate, updated.CheckInDate)
		assert.Equal(t, base.Rooms, next.Rooms)
	})

	t.Run("MovesBetweenRooms", func(t *testing.T) {
		next, out := occupancy.EditLecturer(base, "id-1", models.LecturerUpdate{Name: "Dr. Lee", RoomNumber: "A102"})
		require.True(t, out.OK())

		a101, _ := next.FindRoom("A101")
		a102, _ := next.FindRoom("A102")
		assert.False(t, a101.IsOccupied)
		assert.True(t, a102.IsOccupied)
		occupancyConsistent(t, next)
	})

	t.Run("UnknownLecturerReportsError", func(t *testing.T) {
		next, out := occupancy.EditLecturer(base, "missing", models.LecturerUpdate{Name: "X", RoomNumber: "A101"})
		assert.ErrorIs(t, out.Err, occupancy.ErrLecturerNotFound)
		assert.Equal(t, base, next)
	})

	t.Run("RejectsMoveIntoOccupiedRoom", func(t *testing.T) {
		s := checkIn(t, base, "Dr. Kim", "A102", "id-2")

		next, out := occupancy.EditLecturer(s, "id-1", models.LecturerUpdate{Name: "Dr. Lee", RoomNumber: "A102"})
		assert.ErrorIs(t, out.Err, occupancy.ErrRoomTaken)
		assert.Equal(t, s, next)
		occupancyConsistent(t, next)
	})

	t.Run("RejectsMoveIntoUnknownRoom", func(t *testing.T) {
		_, out := occupancy.EditLecturer(base, "id-1", models.LecturerUpdate{Name: "Dr. Lee", RoomNumber: "Z1"})
		assert.ErrorIs(t, out.Err, occupancy.ErrInvalidRoom)
	})

	t.Run("RejectsRenameOntoAnotherLecturer", func(t *testing.T) {
		s := checkIn(t, base, "Dr. Kim", "A102", "id-2")

		_, out := occupancy.EditLecturer(s, "id-1", models.LecturerUpdate{Name: "dr. kim", RoomNumber: "A101"})
		assert.ErrorIs(t, out.Err, occupancy.ErrAlreadyCheckedIn)
	})
}

func TestLeeScenario(t *testing.T) {
	s := twoRooms()

	s, out := occupancy.CheckIn(s, models.CheckInForm{Name: "Dr. Lee", RoomNumber: "A101"}, "lee", time.Now())
	require.True(t, out.OK())
	require.Len(t, s.Lecturers, 1)
	assert.Equal(t, "A101", s.Lecturers[0].RoomNumber)

	before := s
	s, out = occupancy.CheckIn(s, models.CheckInForm{Name: "dr. lee", RoomNumber: "A102"}, "lee-2", time.Now())
	assert.False(t, out.OK())
	assert.Equal(t, before, s)

	s, out = occupancy.CheckOut(s, "Dr. Lee")
	require.True(t, out.OK())
	assert.Empty(t, s.Lecturers)
	a101, _ := s.FindRoom("A101")
	assert.False(t, a101.IsOccupied)
}

func TestOutcomeNotice(t *testing.T) {
	now := time.Now()

	n := occupancy.Outcome{Message: "done"}.Notice(now)
	assert.Equal(t, models.NoticeSuccess, n.Kind)
	assert.Equal(t, now, n.CreatedAt)

	n = occupancy.Outcome{Err: occupancy.ErrRoomTaken}.Notice(now)
	assert.Equal(t, models.NoticeError, n.Kind)
	assert.Equal(t, "Room is already occupied", n.Message)
}

func TestFreeRooms(t *testing.T) {
	s := checkIn(t, twoRooms(), "Dr. Lee", "A101", "id-1")

	free := s.FreeRooms()
	require.Len(t, free, 1)
	assert.Equal(t, "A102", free[0].Number)

	clone := s.Clone()
	clone.Rooms[0].Number = "changed"
	assert.Equal(t, "A101", s.Rooms[0].Number)
}
