package imagestore

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscred "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"

	"github.com/DentalLabServices/clinic-scheduler/internal/config"
)

// maxDimension caps doctor photos; anything larger gets downscaled before
// encoding.
const maxDimension = 512

const webpQuality = 80

// Store normalizes uploaded doctor photos (downscale + webp) and puts them
// in the clinic's S3 bucket.
type Store struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func New(cfg *config.Config) *Store {
	client := s3.New(s3.Options{
		Region: cfg.AWSRegion,
		Credentials: awscred.NewStaticCredentialsProvider(
			cfg.AWSAccessKey,
			cfg.AWSSecretKey,
			"",
		),
	})

	publicURL := cfg.S3PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.AWSRegion)
	}

	return &Store{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: publicURL,
	}
}

// SaveDoctorPhoto reads an uploaded jpeg/png/webp image, normalizes it and
// returns the public URL of the stored object.
func (s *Store) SaveDoctorPhoto(
	ctx context.Context,
	doctorID uint,
	upload io.Reader,
) (string, error) {

	img, _, err := image.Decode(upload)
	if err != nil {
		return "", fmt.Errorf("decode photo: %w", err)
	}

	img = downscale(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("encode photo: %w", err)
	}

	key := fmt.Sprintf("doctors/%d.webp", doctorID)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("store photo: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.publicURL, key), nil
}

func downscale(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDimension && h <= maxDimension {
		return img
	}

	scale := float64(maxDimension) / float64(w)
	if h > w {
		scale = float64(maxDimension) / float64(h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst
}
