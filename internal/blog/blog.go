// Package blog serves the static catalogue of educational articles.
// Content is compiled in; there is no CMS behind it.
package blog

import "errors"

// ErrNotFound reports an unknown article slug.
var ErrNotFound = errors.New("artigo não encontrado")

// Summary is an article without its body, for listing pages.
type Summary struct {
	Slug       string   `json:"slug"`
	Titulo     string   `json:"titulo"`
	Resumo     string   `json:"resumo"`
	Tags       []string `json:"tags"`
	Data       string   `json:"data"`
	ImagemCapa string   `json:"imagem_capa"`
}

// Article is a Summary plus the markdown body.
type Article struct {
	Summary
	Conteudo string `json:"conteudo"`
}

// Store exposes the compiled-in article set.
type Store struct {
	articles []Article
	bySlug   map[string]int
}

// NewStore indexes the built-in articles by slug.
func NewStore() *Store {
	s := &Store{articles: articles, bySlug: make(map[string]int, len(articles))}
	for i, a := range articles {
		s.bySlug[a.Slug] = i
	}
	return s
}

// List returns every article stripped of its body, newest first.
func (s *Store) List() []Summary {
	out := make([]Summary, len(s.articles))
	for i, a := range s.articles {
		out[i] = a.Summary
	}
	return out
}

// Get returns the full article for a slug.
func (s *Store) Get(slug string) (Article, error) {
	i, ok := s.bySlug[slug]
	if !ok {
		return Article{}, ErrNotFound
	}
	return s.articles[i], nil
}
