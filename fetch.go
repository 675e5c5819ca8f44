package slidegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/k1LoW/errors"
	"golang.org/x/sync/errgroup"
)

const (
	fetchTimeout     = 30 * time.Second
	fetchConcurrency = 4
	maxImageBytes    = 32 << 20
)

// asset is a fetched and decoded image ready for an encoder.
type asset struct {
	b      []byte
	format string // decoded format name: "png", "jpeg", "gif"
	img    image.Image
}

func (a *asset) mimeType() string {
	return "image/" + a.format
}

// slideAssets holds the resolved images of one slide. A nil field
// means the slide has no such image or its fetch failed; either way
// the slide renders without it.
type slideAssets struct {
	image      *asset
	background *asset
}

type fetcher struct {
	client *retryablehttp.Client
	logger *slog.Logger
}

func newFetcher(logger *slog.Logger) *fetcher {
	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.HTTPClient.Timeout = fetchTimeout
	client.Logger = nil
	return &fetcher{client: client, logger: logger}
}

// fetch resolves an image URL to decoded bytes. Data URLs are decoded
// in place; anything else is fetched over HTTP with retries.
func (f *fetcher) fetch(ctx context.Context, pathOrURL string) (_ *asset, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	var b []byte
	switch {
	case strings.HasPrefix(pathOrURL, "data:"):
		b, err = decodeDataURL(pathOrURL)
		if err != nil {
			return nil, err
		}
	case strings.HasPrefix(pathOrURL, "http://"), strings.HasPrefix(pathOrURL, "https://"):
		req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, pathOrURL, nil)
		if err != nil {
			return nil, fmt.Errorf("invalid image URL %s: %w", pathOrURL, err)
		}
		res, err := f.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch image from %s: %w", pathOrURL, err)
		}
		defer res.Body.Close()
		if res.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("failed to fetch image from %s: status code %d", pathOrURL, res.StatusCode)
		}
		b, err = io.ReadAll(io.LimitReader(res.Body, maxImageBytes))
		if err != nil {
			return nil, fmt.Errorf("failed to read image from %s: %w", pathOrURL, err)
		}
	default:
		return nil, fmt.Errorf("unsupported image URL scheme: %s", pathOrURL)
	}

	img, format, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image from %s: %w", pathOrURL, err)
	}
	return &asset{b: b, format: format, img: img}, nil
}

// prefetch resolves the images of all slides in parallel while
// keeping results indexed by slide, so encoding can stay strictly
// ordered. Fetch failures are contained: the slot stays nil, a
// warning is logged and the export continues without that image.
func (f *fetcher) prefetch(ctx context.Context, slides Slides, withBackgrounds bool) []slideAssets {
	assets := make([]slideAssets, len(slides))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i, slide := range slides {
		if slide.ImageURL != "" {
			g.Go(func() error {
				a, err := f.fetch(ctx, slide.ImageURL)
				if err != nil {
					f.logger.Warn("failed to load slide image", slog.Int("slide", i+1), slog.Any("error", err))
					return nil
				}
				assets[i].image = a
				return nil
			})
		}
		if withBackgrounds && slide.BackgroundImage != "" {
			g.Go(func() error {
				a, err := f.fetch(ctx, slide.BackgroundImage)
				if err != nil {
					f.logger.Warn("failed to load background image", slog.Int("slide", i+1), slog.Any("error", err))
					return nil
				}
				assets[i].background = a
				return nil
			})
		}
	}
	_ = g.Wait() // workers only log; fetch errors never fail the job
	return assets
}

func decodeDataURL(dataURL string) ([]byte, error) {
	_, rest, ok := strings.Cut(dataURL, ",")
	if !ok {
		return nil, fmt.Errorf("malformed data URL")
	}
	b, err := base64.StdEncoding.DecodeString(rest)
	if err != nil {
		return nil, fmt.Errorf("failed to decode data URL: %w", err)
	}
	return b, nil
}
