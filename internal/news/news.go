// Package news pulls the latest Brazilian economy headlines from the
// Google News RSS feed.
package news

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"math/big"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// Item is one headline ready for the frontend.
type Item struct {
	Titulo         string `json:"titulo"`
	Link           string `json:"link"`
	Fonte          string `json:"fonte"`
	DataPublicacao string `json:"data_publicacao"`
	Imagem         string `json:"imagem"`
}

// Config selects the feed and caps how many items one fetch yields.
type Config struct {
	FeedURL  string
	MaxItems int
	Timeout  time.Duration
}

// Client fetches and normalizes the RSS feed.
type Client struct {
	cfg  Config
	http *resty.Client
	log  *logrus.Entry
	now  func() time.Time
}

// NewClient builds a feed client. now is the clock used for relative
// timestamps; pass time.Now outside tests.
func NewClient(cfg Config, log *logrus.Entry, now func() time.Time) *Client {
	return &Client{
		cfg: cfg,
		http: resty.New().
			SetTimeout(cfg.Timeout).
			SetHeader("User-Agent", "julishub/1.0"),
		log: log,
		now: now,
	}
}

type rssDoc struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title      string     `xml:"title"`
	Link       string     `xml:"link"`
	PubDate    string     `xml:"pubDate"`
	Media      []rssMedia `xml:"http://search.yahoo.com/mrss/ content"`
	Thumbnails []rssMedia `xml:"http://search.yahoo.com/mrss/ thumbnail"`
}

type rssMedia struct {
	URL string `xml:"url,attr"`
}

// Fetch downloads the feed and returns up to MaxItems normalized
// headlines, newest first as the feed orders them.
func (c *Client) Fetch(ctx context.Context) ([]Item, error) {
	resp, err := c.http.R().SetContext(ctx).Get(c.cfg.FeedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("fetch feed: status %d", resp.StatusCode())
	}

	var doc rssDoc
	if err := xml.Unmarshal(resp.Body(), &doc); err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	if len(doc.Channel.Items) == 0 {
		return nil, fmt.Errorf("parse feed: no entries")
	}

	limit := c.cfg.MaxItems
	if limit <= 0 || limit > len(doc.Channel.Items) {
		limit = len(doc.Channel.Items)
	}

	items := make([]Item, 0, limit)
	for _, e := range doc.Channel.Items[:limit] {
		fonte := sourceName(e.Link)
		imagem := ""
		if len(e.Media) > 0 {
			imagem = e.Media[0].URL
		} else if len(e.Thumbnails) > 0 {
			imagem = e.Thumbnails[0].URL
		}
		if imagem == "" {
			imagem = placeholderImage(fonte)
		}
		items = append(items, Item{
			Titulo:         e.Title,
			Link:           e.Link,
			Fonte:          fonte,
			DataPublicacao: c.relativeTime(e.PubDate),
			Imagem:         imagem,
		})
	}

	c.log.WithField("items", len(items)).Debug("feed fetched")
	return items, nil
}

// Known outlets, matched by substring against the article link. Order
// matters: Folha links live under folha.uol.com.br, so "folha" must be
// tried before "uol".
var sourceNames = []struct {
	key  string
	name string
}{
	{"infomoney", "InfoMoney"},
	{"g1.globo", "G1"},
	{"valor", "Valor Econômico"},
	{"exame", "Exame"},
	{"estadao", "Estadão"},
	{"folha", "Folha de S.Paulo"},
	{"uol", "UOL Economia"},
	{"cnnbrasil", "CNN Brasil"},
	{"moneytimes", "Money Times"},
	{"seudinheiro", "Seu Dinheiro"},
	{"investnews", "InvestNews"},
	{"neofeed", "NeoFeed"},
	{"investidor10", "Investidor10"},
	{"suno", "Suno Notícias"},
}

func sourceName(link string) string {
	lower := strings.ToLower(link)
	for _, s := range sourceNames {
		if strings.Contains(lower, s.key) {
			return s.name
		}
	}

	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return "Fonte Desconhecida"
	}
	domain := strings.TrimPrefix(u.Host, "www.")
	domain = strings.TrimSuffix(domain, ".com.br")
	domain = strings.TrimSuffix(domain, ".com")
	if domain == "" {
		return "Fonte Desconhecida"
	}
	return strings.ToUpper(domain[:1]) + domain[1:]
}

var placeholderColors = []string{
	"f59e0b", "10b981", "3b82f6", "8b5cf6", "ef4444",
	"06b6d4", "f97316", "14b8a6", "6366f1", "ec4899",
}

// placeholderImage picks a stable color per source so cards without a
// feed image still look consistent between fetches.
func placeholderImage(fonte string) string {
	sum := md5.Sum([]byte(fonte))
	n := new(big.Int)
	n.SetString(hex.EncodeToString(sum[:]), 16)
	color := placeholderColors[n.Mod(n, big.NewInt(int64(len(placeholderColors)))).Int64()]
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=%s&color=fff&size=400&bold=true",
		url.QueryEscape(fonte[:1]), color)
}

// relativeTime renders an RFC 1123 publication date as "Há 2h",
// "Há 3 dias" or a plain date once it is older than a week.
func (c *Client) relativeTime(pubDate string) string {
	var pub time.Time
	var err error
	for _, layout := range []string{time.RFC1123, time.RFC1123Z, time.RFC822, time.RFC822Z} {
		if pub, err = time.Parse(layout, pubDate); err == nil {
			break
		}
	}
	if err != nil {
		return "Data desconhecida"
	}

	diff := c.now().Sub(pub)
	days := int(diff.Hours() / 24)
	switch {
	case days == 1:
		return "Há 1 dia"
	case days > 1 && days < 7:
		return fmt.Sprintf("Há %d dias", days)
	case days >= 7:
		return pub.Format("02/01/2006")
	}

	if h := int(diff.Hours()); h > 0 {
		return fmt.Sprintf("Há %dh", h)
	}
	if m := int(diff.Minutes()); m > 0 {
		return fmt.Sprintf("Há %dmin", m)
	}
	return "Agora"
}
