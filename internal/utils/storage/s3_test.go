package storage

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwsS3_PublicLinkRoundTrip(t *testing.T) {
	s := &awsS3{bucket: "pantry-chef", region: "ap-southeast-1"}

	link := s.GetPublicLinkKey("recipes/recipe-123.jpg")
	assert.Equal(t, "https://pantry-chef.s3.ap-southeast-1.amazonaws.com/recipes/recipe-123.jpg", link)
	assert.Equal(t, "recipes/recipe-123.jpg", s.GetObjectKeyFromLink(link))
	assert.Empty(t, s.GetObjectKeyFromLink("https://example.com/recipes/recipe-123.jpg"))
}

func TestAwsS3_UploadRejectsDisallowedType(t *testing.T) {
	s := &awsS3{bucket: "pantry-chef", region: "ap-southeast-1"}
	file := &multipart.FileHeader{Filename: "notes.pdf", Header: textproto.MIMEHeader{}}

	_, err := s.UploadFile("recipe-1", file, "recipes", AllowImage...)
	assert.ErrorIs(t, err, ErrFileTypeNotAllowed)
}

func TestAwsS3_UploadWithoutClient(t *testing.T) {
	s := &awsS3{bucket: "pantry-chef", region: "ap-southeast-1"}
	file := &multipart.FileHeader{Filename: "photo.JPG", Header: textproto.MIMEHeader{}}

	_, err := s.UploadFile("recipe-1", file, "recipes", AllowImage...)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageNotReady)
}
