package controllerImp

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"

	"farmassist/pkg/kb/service"
)

type KBCtrl struct {
	s        service.KBService
	allow    map[string]bool
	maxBytes int
}

func New(s service.KBService, allowedDomains string, maxBytes int) *KBCtrl {
	allow := map[string]bool{}
	for _, h := range strings.Split(allowedDomains, ",") {
		h = strings.TrimSpace(h)
		if h != "" {
			allow[strings.ToLower(h)] = true
		}
	}
	if maxBytes <= 0 {
		maxBytes = 1500000
	}
	return &KBCtrl{s: s, allow: allow, maxBytes: maxBytes}
}

type ingestReq struct {
	Title     string `json:"title"`
	Tags      string `json:"tags"`
	Text      string `json:"text"`
	SourceURL string `json:"source_url"`
}

func (h *KBCtrl) IngestText(c echo.Context) error {
	var req ingestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if strings.TrimSpace(req.Title) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}
	if strings.TrimSpace(req.Text) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "text is required"})
	}
	doc, chunks, err := h.s.UpsertDocument(strings.TrimSpace(req.Title), strings.TrimSpace(req.Tags), req.Text, req.SourceURL)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"doc": doc, "chunks": chunks})
}

func (h *KBCtrl) IngestURL(c echo.Context) error {
	var body struct{ URL, Tags, Title string }
	if err := c.Bind(&body); err != nil || body.URL == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "url required"})
	}
	u, err := url.Parse(body.URL)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad url"})
	}
	host := strings.ToLower(u.Host)
	if !h.allow[host] {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "domain not allowed"})
	}

	txt, title, err := fetchMainText(body.URL, h.maxBytes)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
	}
	if body.Title != "" {
		title = body.Title
	}

	doc, n, err := h.s.UpsertDocument(title, body.Tags, txt, body.URL)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"doc": doc, "chunks": n})
}

func (h *KBCtrl) Docs(c echo.Context) error {
	docs, err := h.s.ListDocs()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, docs)
}

func (h *KBCtrl) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "q required"})
	}

	chunks, err := h.s.Search(q, 6)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	seen := map[uint]struct{}{}
	ids := make([]uint, 0, len(chunks))
	for _, ch := range chunks {
		if _, ok := seen[ch.DocID]; !ok {
			seen[ch.DocID] = struct{}{}
			ids = append(ids, ch.DocID)
		}
	}
	meta, _ := h.s.DocsMeta(ids)

	type outChunk struct {
		ChunkID   uint   `json:"chunk_id"`
		DocID     uint   `json:"doc_id"`
		Ord       int    `json:"ord"`
		Text      string `json:"text"`
		DocTitle  string `json:"doc_title,omitempty"`
		SourceURL string `json:"source_url,omitempty"`
	}
	out := make([]outChunk, 0, len(chunks))
	for _, ch := range chunks {
		oc := outChunk{ChunkID: ch.ChunkID, DocID: ch.DocID, Ord: ch.Ord, Text: ch.Text}
		if d, ok := meta[ch.DocID]; ok {
			oc.DocTitle = d.Title
			oc.SourceURL = d.SourceURL
		}
		out = append(out, oc)
	}
	return c.JSON(http.StatusOK, out)
}

// fetchMainText pulls a page and keeps its readable paragraphs.
func fetchMainText(pageURL string, maxBytes int) (text, title string, err error) {
	httpc := &http.Client{Timeout: 20 * time.Second}
	resp, err := httpc.Get(pageURL)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("fetch status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, int64(maxBytes)))
	if err != nil {
		return "", "", err
	}
	title = strings.TrimSpace(doc.Find("title").First().Text())
	doc.Find("script, style, nav, header, footer, aside").Remove()

	var sb strings.Builder
	doc.Find("h1, h2, h3, p, li").Each(func(_ int, s *goquery.Selection) {
		t := strings.TrimSpace(s.Text())
		if t != "" {
			sb.WriteString(t)
			sb.WriteString("\n")
		}
	})
	text = sb.String()
	if strings.TrimSpace(text) == "" {
		return "", "", fmt.Errorf("no readable text at %s", pageURL)
	}
	if title == "" {
		title = pageURL
	}
	return text, title, nil
}
