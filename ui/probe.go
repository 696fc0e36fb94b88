package ui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"smartshop/domain/mimetypes"
	"smartshop/render"
	"time"
)

// sniffLength is how much of an image is fetched to recognise it.
const sniffLength = 3072

// ImageProbe stands in for the browser image loader: it fetches the head of
// every image of a view and reports the outcome back to the view.
type ImageProbe struct {
	http *http.Client
	log  *slog.Logger
}

func NewImageProbe(timeout time.Duration, log *slog.Logger) *ImageProbe {
	return &ImageProbe{http: &http.Client{Timeout: timeout}, log: log}
}

// Probe checks each image once. There is no retry.
func (p *ImageProbe) Probe(ctx context.Context, view *render.MessageView) {
	for i, image := range view.Images() {
		if err := p.check(ctx, image.URL); err != nil {
			p.log.Debug("Image probe failed", "url", image.URL, "error", err)
			view.ImageFailed(i)
			continue
		}
		if i == 0 {
			view.ImageLoaded()
		}
	}
}

func (p *ImageProbe) check(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Range", fmt.Sprintf("bytes=0-%d", sniffLength-1))
	resp, err := p.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	head, err := io.ReadAll(io.LimitReader(resp.Body, sniffLength))
	if err != nil {
		return err
	}
	if detected := mimetypes.Detect(head); !mimetypes.IsImage(detected) {
		return fmt.Errorf("not an image: %s", detected)
	}
	return nil
}
