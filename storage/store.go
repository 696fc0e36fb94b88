//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../mocks/mock_store.go -package=mocks
package storage

// Keys under which the client persists its session.
const (
	KeyMessages        = "messages"
	KeyCart            = "cart"
	KeyAdminToken      = "admin_token"
	KeyAdminUser       = "admin_user"
	KeySuperAdminToken = "superadmin_token"
)

// IStore is the narrow key/value surface the client persists through.
// Read returns errors.ErrKeyNotFound when nothing is stored under key.
type IStore interface {
	Read(key string) ([]byte, error)
	Write(key string, value []byte) error
	Delete(key string) error
	Clear() error
}
