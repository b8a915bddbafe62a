package utils

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// CloudinaryUploader pushes image payloads to Cloudinary and hands back the
// hosted URL
type CloudinaryUploader struct {
	client    *resty.Client
	cloudName string
	apiKey    string
	apiSecret string
	folder    string
}

type cloudinaryUploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewCloudinaryUploader builds an uploader for the given cloud and folder
func NewCloudinaryUploader(cloudName, apiKey, apiSecret, folder string) *CloudinaryUploader {
	return &CloudinaryUploader{
		client:    resty.New().SetTimeout(30 * time.Second),
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		folder:    folder,
	}
}

// UploadImage uploads a single image and returns its secure URL
func (u *CloudinaryUploader) UploadImage(filename string, file io.Reader) (string, error) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	// Cloudinary signs the sorted upload params with the API secret
	toSign := fmt.Sprintf("folder=%s&timestamp=%s%s", u.folder, timestamp, u.apiSecret)
	digest := sha1.Sum([]byte(toSign))
	signature := hex.EncodeToString(digest[:])

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", u.cloudName)

	var result cloudinaryUploadResponse
	resp, err := u.client.R().
		SetFileReader("file", filename, file).
		SetFormData(map[string]string{
			"api_key":   u.apiKey,
			"timestamp": timestamp,
			"folder":    u.folder,
			"signature": signature,
		}).
		SetResult(&result).
		SetError(&result).
		Post(endpoint)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %v", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("cloudinary error: %s", result.Error.Message)
	}

	return result.SecureURL, nil
}
