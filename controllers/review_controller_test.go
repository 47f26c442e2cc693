package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func spotRows(id, ownerID uint) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "owner_id", "name"}).AddRow(id, ownerID, "Cozy Loft")
}

func TestCreateSpotReviewRejectsDuplicate(t *testing.T) {
	mock := mockStore(t)

	mock.ExpectQuery(`SELECT (.+) FROM "spots" WHERE`).
		WillReturnRows(spotRows(1, 9))
	mock.ExpectQuery(`SELECT (.+) FROM "reviews" WHERE user_id = \$1 AND spot_id = \$2`).
		WithArgs(4, 1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	router := newTestRouter()
	router.POST("/api/spots/:spotId/reviews", asUser(4), CreateSpotReview)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/spots/1/reviews",
		strings.NewReader(`{"review":"Again","stars":5}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "User already has a review for this spot")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A duplicate that slips past the pre-check and hits the unique index
// still comes back as a conflict, not a server error.
func TestCreateSpotReviewMapsUniqueViolationToConflict(t *testing.T) {
	mock := mockStore(t)

	mock.ExpectQuery(`SELECT (.+) FROM "spots" WHERE`).
		WillReturnRows(spotRows(1, 9))
	mock.ExpectQuery(`SELECT (.+) FROM "reviews" WHERE user_id = \$1 AND spot_id = \$2`).
		WithArgs(4, 1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "reviews"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()

	router := newTestRouter()
	router.POST("/api/spots/:spotId/reviews", asUser(4), CreateSpotReview)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/spots/1/reviews",
		strings.NewReader(`{"review":"Great stay","stars":5}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A transient error on the duplicate pre-check must not be read as
// "no existing review".
func TestCreateSpotReviewPrecheckErrorIsServerError(t *testing.T) {
	mock := mockStore(t)

	mock.ExpectQuery(`SELECT (.+) FROM "spots" WHERE`).
		WillReturnRows(spotRows(1, 9))
	mock.ExpectQuery(`SELECT (.+) FROM "reviews" WHERE user_id = \$1 AND spot_id = \$2`).
		WithArgs(4, 1, 1).
		WillReturnError(fmt.Errorf("connection reset"))

	router := newTestRouter()
	router.POST("/api/spots/:spotId/reviews", asUser(4), CreateSpotReview)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/spots/1/reviews",
		strings.NewReader(`{"review":"Great stay","stars":5}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
