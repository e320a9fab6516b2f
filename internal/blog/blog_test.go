package blog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhconzatti/julishub/internal/blog"
)

func TestListStripsBodies(t *testing.T) {
	store := blog.NewStore()

	list := store.List()
	require.Len(t, list, 3)
	require.Equal(t, "reserva-de-emergencia", list[0].Slug)

	for _, s := range list {
		require.NotEmpty(t, s.Titulo)
		require.NotEmpty(t, s.Resumo)
		require.NotEmpty(t, s.Tags)
		require.NotEmpty(t, s.Data)
	}
}

func TestGetBySlug(t *testing.T) {
	store := blog.NewStore()

	art, err := store.Get("juros-compostos-magia")
	require.NoError(t, err)
	require.Equal(t, "A Mágica dos Juros Compostos: Como Transformar R$ 100 em Milhões", art.Titulo)
	require.Contains(t, art.Conteudo, "Regra dos 72")
}

func TestGetUnknownSlug(t *testing.T) {
	store := blog.NewStore()

	_, err := store.Get("nao-existe")
	require.ErrorIs(t, err, blog.ErrNotFound)
}
