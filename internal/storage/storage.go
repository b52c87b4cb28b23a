package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/google/uuid"
)

// Storage grava um blob e devolve o path relativo persistido na linha
// da entidade (sempre iniciado por /storage/). A URL pública é montada
// pelo mapeador de apresentação.
type Storage interface {
	Save(ctx context.Context, dir, name string, r io.Reader) (string, error)
}

// SavePhoto processa um upload de imagem (redimensiona e converte para
// webp) e grava no diretório do recurso. A escrita da foto acontece
// antes da escrita da linha; uma falha posterior da linha pode deixar
// o arquivo órfão.
func SavePhoto(ctx context.Context, st Storage, dir string, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	img, err := ProcessImage(f)
	if err != nil {
		return "", err
	}

	name := uuid.NewString() + ".webp"
	return st.Save(ctx, dir, name, bytes.NewReader(img))
}
