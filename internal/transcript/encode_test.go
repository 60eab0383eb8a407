package transcript

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeJSON(t *testing.T) {
	doc := Build(sampleVTT, "v1", "T", "http://example/v1?a=1&b=<2>")

	var buf bytes.Buffer
	if err := doc.EncodeJSON(&buf); err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}

	want := `{
  "videoId": "v1",
  "videoTitle": "T",
  "vimeoUrl": "http://example/v1?a=1&b=<2>",
  "transcript": [
    {
      "startTime": "00:00:00",
      "endTime": "00:00:02",
      "text": "Hello there."
    },
    {
      "startTime": "00:00:02",
      "endTime": "00:00:04",
      "text": "Second line continued."
    }
  ]
}
`
	if buf.String() != want {
		t.Errorf("EncodeJSON output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestEncodeJSONEmptyTranscript(t *testing.T) {
	doc := &Document{VideoID: "v", VideoTitle: "t", SourceURL: "u"}

	var buf bytes.Buffer
	if err := doc.EncodeJSON(&buf); err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"transcript": []`) {
		t.Errorf("expected empty transcript list, got:\n%s", buf.String())
	}
	if doc.Cues != nil {
		t.Error("encoding must not modify the document")
	}
}

func TestEncodeYAML(t *testing.T) {
	doc := Build(sampleVTT, "v1", "T", "http://example/v1")

	var buf bytes.Buffer
	if err := doc.EncodeYAML(&buf); err != nil {
		t.Fatalf("EncodeYAML: %v", err)
	}

	out := buf.String()
	order := []string{"videoId: v1", "videoTitle: T", "vimeoUrl: http://example/v1", "transcript:", "startTime:", "endTime:", "text: Hello there."}
	last := -1
	for _, s := range order {
		i := strings.Index(out, s)
		if i < 0 {
			t.Fatalf("missing %q in:\n%s", s, out)
		}
		if i < last {
			t.Errorf("%q out of order in:\n%s", s, out)
		}
		last = i
	}
}
