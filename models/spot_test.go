package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpotPreviewImage(t *testing.T) {
	spot := Spot{SpotImages: []SpotImage{
		{URL: "https://img.example/one.jpg", Preview: false},
		{URL: "https://img.example/two.jpg", Preview: true},
	}}
	assert.Equal(t, "https://img.example/two.jpg", spot.PreviewImage())

	bare := Spot{}
	assert.Equal(t, PlaceholderImage, bare.PreviewImage())
}

func TestSpotValidateCoordinates(t *testing.T) {
	spot := Spot{Lat: 47.6, Lng: -122.3}
	assert.NoError(t, spot.ValidateCoordinates())

	spot.Lat = 91
	assert.Error(t, spot.ValidateCoordinates())

	spot.Lat = 47.6
	spot.Lng = 181
	assert.Error(t, spot.ValidateCoordinates())
}

func TestSpotValidateName(t *testing.T) {
	spot := Spot{Name: "Cozy Loft"}
	assert.NoError(t, spot.ValidateName())

	spot.Name = "x"
	assert.Error(t, spot.ValidateName())
}
