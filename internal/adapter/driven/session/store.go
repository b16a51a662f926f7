package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/mersoabreu/fincontrol/internal/domain/entity"
	"github.com/mersoabreu/fincontrol/internal/domain/repository"
)

const sessionFile = "session.json"

// Store é a implementação do SessionRepository sobre um arquivo JSON no
// diretório de estado do usuário. O arquivo guarda auth_token e current_user
// juntos; os dois são gravados e removidos sempre em conjunto.
type Store struct {
	mu          sync.Mutex
	dir         string
	current     entity.Session
	subscribers []func(authenticated bool)
}

// DefaultDir resolve o diretório de estado: $FINCONTROL_HOME ou ~/.fincontrol.
// Retorna string vazia quando nenhum dos dois pode ser determinado, caso em
// que o armazenamento durável fica indisponível (ambientes não interativos).
func DefaultDir() string {
	if dir := os.Getenv("FINCONTROL_HOME"); dir != "" {
		return dir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".fincontrol")
}

// NewStore cria um Store sobre o diretório informado. Um diretório vazio
// significa "sem armazenamento durável": leituras e gravações viram no-ops
// silenciosos sobre a cópia em memória.
func NewStore(dir string) repository.SessionRepository {
	return &Store{dir: dir}
}

// Available reports whether durable storage can be used.
func (s *Store) Available() bool {
	return s.dir != ""
}

func (s *Store) path() string {
	return filepath.Join(s.dir, sessionFile)
}

// Save persiste token e usuário juntos, de forma atômica (arquivo temporário
// seguido de rename), antes de notificar os inscritos. Uma sessão com usuário
// mas sem token viola o invariante e é rejeitada sem gravar nada.
func (s *Store) Save(session entity.Session) error {
	if session.User != nil && session.Token == "" {
		return errors.New("session user requires a token")
	}

	s.mu.Lock()
	if s.dir != "" {
		if err := s.writeFile(session); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	s.current = session
	s.mu.Unlock()

	s.notify(session.Authenticated())
	return nil
}

func (s *Store) writeFile(session entity.Session) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, sessionFile+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, s.path())
}

// Clear remove token e usuário juntos e notifica os inscritos.
func (s *Store) Clear() error {
	s.mu.Lock()
	if s.dir != "" {
		if err := os.Remove(s.path()); err != nil && !os.IsNotExist(err) {
			s.mu.Unlock()
			return err
		}
	}
	s.current = entity.Session{}
	s.mu.Unlock()

	s.notify(false)
	return nil
}

// Restore relê a sessão persistida no início do processo. Arquivo ausente ou
// corrompido significa apenas "não autenticado", nunca um erro para o usuário.
func (s *Store) Restore() entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = s.readFile()
	return s.current
}

func (s *Store) readFile() entity.Session {
	if s.dir == "" {
		return s.current
	}
	data, err := os.ReadFile(s.path())
	if err != nil {
		return entity.Session{}
	}
	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return entity.Session{}
	}
	if session.Token == "" {
		// Nunca expõe usuário sem token, mesmo que o arquivo diga o contrário.
		return entity.Session{}
	}
	return session
}

// IsAuthenticated consulta o armazenamento durável, não a cópia em memória:
// outro processo pode ter feito logout desde o Restore.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dir == "" {
		return s.current.Authenticated()
	}
	return s.readFile().Authenticated()
}

// Token retorna o bearer token atual, relendo o armazenamento durável.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dir == "" {
		return s.current.Token
	}
	session := s.readFile()
	s.current = session
	return session.Token
}

// CurrentUser retorna o usuário da sessão atual, se houver.
func (s *Store) CurrentUser() *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dir != "" {
		s.current = s.readFile()
	}
	return s.current.User
}

// Subscribe registra um callback de mudança de estado de autenticação.
func (s *Store) Subscribe(fn func(authenticated bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) notify(authenticated bool) {
	s.mu.Lock()
	subs := make([]func(bool), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(authenticated)
	}
}
