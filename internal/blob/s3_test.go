package blob

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// fakeS3 answers the PutObject, GetObject and ListObjectsV2 calls the
// store makes, keyed by path-style object key.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func (f *fakeS3) RoundTrip(req *http.Request) (*http.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	parts := strings.SplitN(strings.TrimPrefix(req.URL.Path, "/"), "/", 2)
	key := ""
	if len(parts) == 2 {
		key = parts[1]
	}

	switch {
	case req.Method == http.MethodGet && req.URL.Query().Get("list-type") == "2":
		prefix := req.URL.Query().Get("prefix")
		var keys []string
		for k := range f.objects {
			if strings.HasPrefix(k, prefix) {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		var b strings.Builder
		b.WriteString(`<?xml version="1.0"?><ListBucketResult><IsTruncated>false</IsTruncated>`)
		for _, k := range keys {
			fmt.Fprintf(&b, "<Contents><Key>%s</Key><Size>%d</Size></Contents>", k, len(f.objects[k]))
		}
		b.WriteString("</ListBucketResult>")
		return respond(200, b.String(), http.Header{"Content-Type": {"application/xml"}}), nil

	case req.Method == http.MethodPut:
		body, _ := io.ReadAll(req.Body)
		if dec, ok := decodeChunked(body); ok {
			body = dec
		}
		f.objects[key] = body
		f.types[key] = req.Header.Get("Content-Type")
		return respond(200, "", http.Header{"ETag": {`"etag"`}}), nil

	case req.Method == http.MethodGet:
		body, ok := f.objects[key]
		if !ok {
			return respond(404, `<?xml version="1.0"?><Error><Code>NoSuchKey</Code><Message>missing</Message></Error>`,
				http.Header{"Content-Type": {"application/xml"}}), nil
		}
		return respond(200, string(body), http.Header{
			"Content-Length": {strconv.Itoa(len(body))},
			"Content-Type":   {f.types[key]},
		}), nil
	}
	return respond(501, "", http.Header{}), nil
}

func respond(code int, body string, h http.Header) *http.Response {
	return &http.Response{StatusCode: code, Body: io.NopCloser(strings.NewReader(body)), Header: h, ContentLength: int64(len(body))}
}

// decodeChunked unwraps a single-chunk aws-chunked body.
func decodeChunked(b []byte) ([]byte, bool) {
	parts := bytes.Split(b, []byte("\r\n"))
	if len(parts) < 3 {
		return nil, false
	}
	size := string(parts[0])
	if i := strings.IndexByte(size, ';'); i >= 0 {
		size = size[:i]
	}
	n, err := strconv.ParseInt(size, 16, 64)
	if err != nil || n <= 0 || int64(len(parts[1])) != n {
		return nil, false
	}
	return parts[1], true
}

func newFakeS3(t *testing.T) (*S3, *fakeS3) {
	t.Helper()
	rt := &fakeS3{objects: make(map[string][]byte), types: make(map[string]string)}
	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion("us-east-1"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("AKIA", "SECRET", "")),
	)
	if err != nil {
		t.Fatalf("aws config: %v", err)
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String("https://fake.s3.local")
		o.HTTPClient = &http.Client{Transport: rt}
		o.UsePathStyle = true
	})
	return newS3WithClient(client, "meals", "exports"), rt
}

func TestS3PutGetList(t *testing.T) {
	store, rt := newFakeS3(t)
	ctx := context.Background()

	info, err := store.Put(ctx, "2026-10-12/report.json", []byte(`{"week":"2026-10-12"}`), "application/json")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if info.Location != "s3://meals/exports/2026-10-12/report.json" {
		t.Fatalf("Location = %s", info.Location)
	}
	if got := string(rt.objects["exports/2026-10-12/report.json"]); got != `{"week":"2026-10-12"}` {
		t.Fatalf("stored body = %q", got)
	}
	if rt.types["exports/2026-10-12/report.json"] != "application/json" {
		t.Fatalf("content type = %q", rt.types["exports/2026-10-12/report.json"])
	}

	data, err := store.Get(ctx, "2026-10-12/report.json")
	if err != nil || string(data) != `{"week":"2026-10-12"}` {
		t.Fatalf("Get = %q, %v", data, err)
	}

	_, _ = store.Put(ctx, "2026-10-12/shopping.csv", []byte("Item,Cost\n"), "text/csv")
	list, err := store.List(ctx, "2026-10-12/")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[1].Key != "exports/2026-10-12/shopping.csv" {
		t.Fatalf("List = %+v", list)
	}
}

func TestS3MissingKey(t *testing.T) {
	store, _ := newFakeS3(t)
	if _, err := store.Get(context.Background(), "nope.json"); err == nil {
		t.Fatal("expected error for missing key")
	}
}

func TestNewS3RequiresBucket(t *testing.T) {
	if _, err := NewS3(context.Background(), S3Config{}); err == nil {
		t.Fatal("expected bucket error")
	}
}
