package api

import (
	"net/http"
	"strings"

	"github.com/mersoabreu/fincontrol/internal/domain/repository"
)

// publicPaths são as rotas que nunca recebem o bearer token e cujas respostas
// 401 não derrubam a sessão local.
var publicPaths = []string{
	"/auth/login",
	"/auth/forgot-password",
}

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if strings.HasSuffix(path, p) {
			return true
		}
	}
	return false
}

// authTransport centraliza a autorização das requisições: anexa o bearer
// token a toda chamada não pública e, ao receber 401 de uma rota autenticada,
// limpa a sessão (token e usuário juntos) exatamente uma vez por resposta e
// deixa o erro original seguir para o chamador. Efeito colateral, não retry.
type authTransport struct {
	base           http.RoundTripper
	sessions       repository.SessionRepository
	onUnauthorized func()
}

func newAuthTransport(base http.RoundTripper, sessions repository.SessionRepository, onUnauthorized func()) *authTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &authTransport{base: base, sessions: sessions, onUnauthorized: onUnauthorized}
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	public := isPublicPath(req.URL.Path)

	if !public {
		if token := t.sessions.Token(); token != "" {
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && !public {
		_ = t.sessions.Clear()
		if t.onUnauthorized != nil {
			t.onUnauthorized()
		}
	}

	return resp, nil
}
