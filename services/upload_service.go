package services

import (
	"context"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/kenandcrys/auth-me/config"
	"github.com/kenandcrys/auth-me/errors"
)

// UploadImage pushes a multipart file to Cloudinary and returns the hosted
// secure URL. folder groups uploads per resource kind ("spots", "reviews").
func UploadImage(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeInvalidFormat, "cannot open uploaded file", err)
	}
	defer src.Close()

	result, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder: folder,
	})
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeValidation, "image upload failed", err)
	}

	return result.SecureURL, nil
}
