package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/navikt/lecturerooms/internal/api"
	"github.com/navikt/lecturerooms/internal/models"
	"github.com/navikt/lecturerooms/internal/repository/memory"
	"github.com/navikt/lecturerooms/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAPI(t *testing.T) *http.ServeMux {
	t.Helper()
	n := 0
	svc, err := service.NewOccupancyService(context.Background(), memory.NewRepository(),
		service.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}))
	require.NoError(t, err)
	return api.SetupRoutes(svc)
}

func do(t *testing.T, mux http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(method, path, &buf))
	return rr
}

func decodeOperation(t *testing.T, rr *httptest.ResponseRecorder) api.OperationResponse {
	t.Helper()
	var resp api.OperationResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestRoomEndpoints(t *testing.T) {
	mux := setupAPI(t)

	t.Run("ListDefaults", func(t *testing.T) {
		rr := do(t, mux, http.MethodGet, "/api/rooms", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var rooms []models.Room
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rooms))
		assert.Equal(t, models.DefaultRooms(), rooms)
	})

	t.Run("Add", func(t *testing.T) {
		rr := do(t, mux, http.MethodPost, "/api/rooms", models.RoomForm{Number: "C301"})
		require.Equal(t, http.StatusCreated, rr.Code)

		resp := decodeOperation(t, rr)
		assert.Equal(t, models.NoticeSuccess, resp.Notice.Kind)
		_, found := resp.State.FindRoom("C301")
		assert.True(t, found)
	})

	t.Run("AddDuplicate", func(t *testing.T) {
		rr := do(t, mux, http.MethodPost, "/api/rooms", models.RoomForm{Number: "C301"})
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "Room already exists", decodeOperation(t, rr).Notice.Message)
	})

	t.Run("AddBlank", func(t *testing.T) {
		rr := do(t, mux, http.MethodPost, "/api/rooms", models.RoomForm{})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Rename", func(t *testing.T) {
		rr := do(t, mux, http.MethodPut, "/api/rooms/C301", models.RoomForm{Number: "C302"})
		require.Equal(t, http.StatusOK, rr.Code)
		_, found := decodeOperation(t, rr).State.FindRoom("C302")
		assert.True(t, found)
	})

	t.Run("DeleteUnknown", func(t *testing.T) {
		rr := do(t, mux, http.MethodDelete, "/api/rooms/Z999", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		rr := do(t, mux, http.MethodDelete, "/api/rooms/C302", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		_, found := decodeOperation(t, rr).State.FindRoom("C302")
		assert.False(t, found)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/rooms", bytes.NewBufferString("{")))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("UnsupportedMethod", func(t *testing.T) {
		rr := do(t, mux, http.MethodPatch, "/api/rooms", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestLecturerEndpoints(t *testing.T) {
	mux := setupAPI(t)

	rr := do(t, mux, http.MethodPost, "/api/lecturers", models.CheckInForm{Name: "Dr. Lee", RoomNumber: "A101"})
	require.Equal(t, http.StatusCreated, rr.Code)
	resp := decodeOperation(t, rr)
	require.Len(t, resp.State.Lecturers, 1)
	assert.Equal(t, "id-1", resp.State.Lecturers[0].ID)

	t.Run("DuplicateName", func(t *testing.T) {
		rr := do(t, mux, http.MethodPost, "/api/lecturers", models.CheckInForm{Name: "dr. lee", RoomNumber: "A102"})
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("OccupiedRoom", func(t *testing.T) {
		rr := do(t, mux, http.MethodPost, "/api/lecturers", models.CheckInForm{Name: "Dr. Kim", RoomNumber: "A101"})
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "Room is already occupied", decodeOperation(t, rr).Notice.Message)
	})

	t.Run("UnknownRoom", func(t *testing.T) {
		rr := do(t, mux, http.MethodPost, "/api/lecturers", models.CheckInForm{Name: "Dr. Kim", RoomNumber: "Z1"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("List", func(t *testing.T) {
		rr := do(t, mux, http.MethodGet, "/api/lecturers", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var lecturers []models.Lecturer
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &lecturers))
		require.Len(t, lecturers, 1)
		assert.Equal(t, "Dr. Lee", lecturers[0].Name)
	})

	t.Run("Edit", func(t *testing.T) {
		rr := do(t, mux, http.MethodPut, "/api/lecturers/id-1", models.LecturerUpdate{Name: "Dr. Lee", RoomNumber: "B201"})
		require.Equal(t, http.StatusOK, rr.Code)
		lee, _ := decodeOperation(t, rr).State.FindLecturer("id-1")
		assert.Equal(t, "B201", lee.RoomNumber)
	})

	t.Run("EditUnknown", func(t *testing.T) {
		rr := do(t, mux, http.MethodPut, "/api/lecturers/missing", models.LecturerUpdate{Name: "X", RoomNumber: "A101"})
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("CheckOutByName", func(t *testing.T) {
		rr := do(t, mux, http.MethodPost, "/api/checkout", models.CheckOutForm{Name: "DR. LEE"})
		require.Equal(t, http.StatusOK, rr.Code)
		resp := decodeOperation(t, rr)
		assert.Empty(t, resp.State.Lecturers)
		room, _ := resp.State.FindRoom("B201")
		assert.False(t, room.IsOccupied)
	})

	t.Run("CheckOutByIDUnknown", func(t *testing.T) {
		rr := do(t, mux, http.MethodDelete, "/api/lecturers/id-1", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("CheckOutRequiresPost", func(t *testing.T) {
		rr := do(t, mux, http.MethodGet, "/api/checkout", nil)
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}

func TestCheckOutByID(t *testing.T) {
	mux := setupAPI(t)
	require.Equal(t, http.StatusCreated,
		do(t, mux, http.MethodPost, "/api/lecturers", models.CheckInForm{Name: "Dr. Kim", RoomNumber: "B202"}).Code)

	rr := do(t, mux, http.MethodDelete, "/api/lecturers/id-1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeOperation(t, rr)
	assert.Empty(t, resp.State.Lecturers)
	assert.Equal(t, "Lecturer successfully checked out", resp.Notice.Message)
}
