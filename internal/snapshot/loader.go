package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/san-kum/citysense/internal/logging"
)

const fetchTimeout = 10 * time.Second

// Loader performs the one-shot snapshot fetch. There is no retry and no
// polling: whatever Load returns is the live snapshot for the whole session.
type Loader struct {
	source string
	client *http.Client
	now    func() time.Time
}

func NewLoader(source string) *Loader {
	return &Loader{
		source: source,
		client: &http.Client{Timeout: fetchTimeout},
		now:    time.Now,
	}
}

// Load fetches and decodes the snapshot from the configured source (an HTTP
// URL or a local file path). Any failure is recovered locally: the fixed
// fallback is returned and the dashboard proceeds identically from there.
// The second return reports whether the snapshot came from a live fetch.
func (l *Loader) Load() (*Snapshot, bool) {
	snap, err := l.fetch()
	if err != nil {
		logging.Warnw("snapshot fetch failed, using fallback", "source", l.source, "error", err)
		return Fallback(), false
	}
	snap.Normalize()
	return snap, true
}

func (l *Loader) fetch() (*Snapshot, error) {
	if l.source == "" {
		return nil, fmt.Errorf("no snapshot source configured")
	}

	var body []byte
	var err error
	if strings.HasPrefix(l.source, "http://") || strings.HasPrefix(l.source, "https://") {
		body, err = l.fetchHTTP()
	} else {
		body, err = os.ReadFile(l.source)
	}
	if err != nil {
		return nil, err
	}

	var snap Snapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

func (l *Loader) fetchHTTP() ([]byte, error) {
	u, err := url.Parse(l.source)
	if err != nil {
		return nil, fmt.Errorf("parse source url: %w", err)
	}

	// Cache-busting parameter, matching how the hosted dashboard requests
	// its data file.
	q := u.Query()
	q.Set("t", fmt.Sprintf("%d", l.now().UnixMilli()))
	u.RawQuery = q.Encode()

	resp, err := l.client.Get(u.String())
	if err != nil {
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch snapshot: unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
