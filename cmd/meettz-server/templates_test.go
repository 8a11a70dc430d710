package main

import (
	"bytes"
	"html/template"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/codeGROOVE-dev/meetTZ/pkg/greetings"
	"github.com/codeGROOVE-dev/meetTZ/pkg/registry"
	"github.com/codeGROOVE-dev/meetTZ/pkg/sharestate"
	"github.com/codeGROOVE-dev/meetTZ/pkg/tzconvert"
)

func testTemplates(t *testing.T) *template.Template {
	t.Helper()
	return template.Must(template.New("").Funcs(template.FuncMap{
		"sub": func(a, b float64) float64 { return a - b },
	}).ParseFS(templateFiles, "templates/*.html"))
}

func testCompareData(t *testing.T) (compareData, *sharestate.Codec) {
	t.Helper()
	reg := registry.NewDefault()
	codec := sharestate.NewCodec(reg)
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

	participants := []registry.Participant{
		{ID: "a", Name: "Alice", Zone: "Europe/London", Lang: registry.LangEN},
		{ID: "b", Name: "Bob", Zone: "America/New_York", Lang: registry.LangEN},
	}
	rows := make([]participantRow, 0, len(participants))
	for _, p := range participants {
		rows = append(rows, participantRow{Participant: p, Time: tzconvert.FormatInZone(now, p.Zone)})
	}
	return compareData{
		Title:        "Compare time zones",
		Participants: rows,
		Timezones:    reg.Timezones(),
		Languages:    greetings.LanguageOptions(),
		Token:        url.QueryEscape(codec.Encode(participants)),
	}, codec
}

func TestCompareShareLinkSurvivesQueryParsing(t *testing.T) {
	tmpl := testTemplates(t)
	data, codec := testCompareData(t)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "compare.html", data); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()

	link := "/?p=" + data.Token
	if !strings.Contains(out, link) {
		t.Fatalf("rendered page does not contain share link %q", link)
	}

	// Parse the link the way a browser request comes back in; a raw
	// semicolon in the token would make ParseQuery drop the pair.
	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("share link does not parse: %v", err)
	}
	decoded := codec.Decode(u.Query().Get("p"))
	if len(decoded) != 2 {
		t.Fatalf("share link round trip decoded %d participants, want 2", len(decoded))
	}
	if decoded[0].Name != "Alice" || decoded[1].Zone != "America/New_York" {
		t.Errorf("round trip lost participant data: %+v", decoded)
	}
}

func TestEmbedShareLinkSurvivesQueryParsing(t *testing.T) {
	tmpl := testTemplates(t)
	data, codec := testCompareData(t)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "embed.html", data); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "/?p="+data.Token) {
		t.Fatal("embed page does not link the escaped token")
	}

	u, err := url.Parse("/?p=" + data.Token)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	if decoded := codec.Decode(u.Query().Get("p")); len(decoded) != 2 {
		t.Fatalf("decoded %d participants, want 2", len(decoded))
	}
}

func TestCompareRemoveKeepsTwoRows(t *testing.T) {
	tmpl := testTemplates(t)
	data, _ := testCompareData(t)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "compare.html", data); err != nil {
		t.Fatalf("render: %v", err)
	}
	// The remove handler must clamp the list at two rows, the minimum
	// for a meaningful comparison.
	if !strings.Contains(buf.String(), "rows.children.length > 2") {
		t.Error("remove handler does not clamp at two rows")
	}
	if strings.Contains(buf.String(), "rows.children.length > 1") {
		t.Error("remove handler allows dropping below two rows")
	}
}
