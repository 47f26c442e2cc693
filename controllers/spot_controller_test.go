package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

// Deleting a spot takes its review images, reviews, spot images and
// bookings with it, all inside one transaction.
func TestDeleteSpotCascades(t *testing.T) {
	mock := mockStore(t)

	mock.ExpectQuery(`SELECT (.+) FROM "spots" WHERE`).
		WillReturnRows(spotRows(1, 42))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "review_images" WHERE review_id IN`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "reviews" WHERE spot_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "spot_images" WHERE spot_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "bookings" WHERE spot_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "spots" WHERE "spots"."id" = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := newTestRouter()
	router.DELETE("/api/spots/:spotId", asUser(42), DeleteSpot)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/spots/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Successfully deleted")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSpotStrangerForbidden(t *testing.T) {
	mock := mockStore(t)

	mock.ExpectQuery(`SELECT (.+) FROM "spots" WHERE`).
		WillReturnRows(spotRows(1, 9))

	router := newTestRouter()
	router.DELETE("/api/spots/:spotId", asUser(42), DeleteSpot)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/spots/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
