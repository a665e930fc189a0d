package libs

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

func newClient() (*cloudinary.Cloudinary, error) {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		cldURL := os.Getenv("CLOUDINARY_URL")
		if cldURL == "" {
			return nil, fmt.Errorf("cloudinary environment variables not set")
		}
		return cloudinary.NewFromURL(cldURL)
	}

	return cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
}

// UploadProductImage pushes a locally saved upload to Cloudinary and removes
// the local file afterwards. Returns the hosted URL and the public id needed
// for later deletion.
func UploadProductImage(localPath string) (string, string, error) {
	if _, err := os.Stat(localPath); os.IsNotExist(err) {
		return "", "", fmt.Errorf("file not found: %s", localPath)
	}

	cld, err := newClient()
	if err != nil {
		return "", "", fmt.Errorf("cloudinary init failed: %w", err)
	}

	resp, err := cld.Upload.Upload(context.Background(), localPath, uploader.UploadParams{
		PublicID: fmt.Sprintf("product_%d", time.Now().UnixNano()),
		Folder:   "products",
	})

	os.Remove(localPath)

	if err != nil {
		return "", "", err
	}
	if resp == nil || (resp.SecureURL == "" && resp.URL == "") {
		return "", "", fmt.Errorf("cloudinary returned an empty response")
	}

	url := resp.SecureURL
	if url == "" {
		url = resp.URL
	}
	return url, resp.PublicID, nil
}

func DeleteProductImage(publicID string) error {
	if publicID == "" {
		return nil
	}

	cld, err := newClient()
	if err != nil {
		return fmt.Errorf("cloudinary init failed: %w", err)
	}

	result, err := cld.Upload.Destroy(context.Background(), uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete from Cloudinary: %w", err)
	}
	if result.Result != "ok" && result.Result != "not found" {
		return fmt.Errorf("cloudinary deletion failed: %s", result.Result)
	}
	return nil
}
