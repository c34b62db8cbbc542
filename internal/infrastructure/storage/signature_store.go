// Package storage guarda las imágenes de firmas en disco. La fila de la firma
// solo conserva la ruta relativa y el hash del contenido; los bytes nunca van
// a la base de datos.
package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/usecase"
)

var _ usecase.ImageStore = (*SignatureStore)(nil)

// SignatureStore almacén de imágenes de firma en disco, con nombre derivado
// del hash del contenido (dos envíos idénticos comparten archivo).
type SignatureStore struct {
	dir string
}

// NewSignatureStore crea el almacén y asegura que el directorio exista.
func NewSignatureStore(dir string) (*SignatureStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio de firmas: %w", err)
	}
	return &SignatureStore{dir: dir}, nil
}

// Save escribe los bytes y devuelve la ruta relativa y el sha256 hex del contenido.
func (s *SignatureStore) Save(image []byte, ext string) (path, hash string, err error) {
	sum := sha256.Sum256(image)
	hash = hex.EncodeToString(sum[:])

	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	if ext == "" {
		ext = "png"
	}
	name := hash + "." + ext
	full := filepath.Join(s.dir, name)
	if err := os.WriteFile(full, image, 0o644); err != nil {
		return "", "", fmt.Errorf("storage: escribir firma: %w", err)
	}
	return name, hash, nil
}

// Load lee los bytes de una firma guardada. La ruta es relativa al directorio
// del almacén; se rechaza cualquier intento de salir de él.
func (s *SignatureStore) Load(path string) ([]byte, error) {
	clean := filepath.Clean(path)
	if strings.Contains(clean, "..") || filepath.IsAbs(clean) {
		return nil, fmt.Errorf("storage: ruta inválida: %s", path)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, clean))
	if err != nil {
		return nil, fmt.Errorf("storage: leer firma: %w", err)
	}
	return data, nil
}
