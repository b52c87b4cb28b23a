package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// FilterRule liga um parâmetro de busca a uma coluna. Campos textuais
// usam LIKE %valor% (preservando caixa); campos exatos usam igualdade.
type FilterRule struct {
	Param  string
	Column string
	Exact  bool
	// JOIN aplicado antes do filtro, para colunas de associação
	Join string
}

type ListParams struct {
	Filters map[string]string
	Limit   int
	Offset  int
}

const DefaultLimit = 10

// Normalize aplica os defaults do contrato de listagem: limit=10,
// offset=0. Não há teto para o limit informado pelo chamador.
func (p *ListParams) Normalize() {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ListPage resolve uma página filtrada: aplica as regras sobre os
// filtros presentes (valores vazios são ignorados), conta o total antes
// da paginação e busca a página na ordem dada.
func ListPage[T any](
	ctx context.Context,
	db *gorm.DB,
	rules []FilterRule,
	params ListParams,
	order string,
	preloads ...string,
) ([]T, int64, error) {

	params.Normalize()

	var entity T
	q := db.WithContext(ctx).Model(&entity)

	for _, rule := range rules {
		value := strings.TrimSpace(params.Filters[rule.Param])
		if value == "" {
			continue
		}

		if rule.Join != "" {
			q = q.Joins(rule.Join)
		}

		if rule.Exact {
			q = q.Where(rule.Column+" = ?", value)
		} else {
			q = q.Where(rule.Column+" LIKE ?", "%"+value+"%")
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	for _, preload := range preloads {
		q = q.Preload(preload)
	}

	var items []T
	if err := q.
		Order(order).
		Limit(params.Limit).
		Offset(params.Offset).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// findByID devolve (nil, nil) quando o id não existe: "não encontrado"
// é um valor de retorno normal, não um erro.
func findByID[T any](ctx context.Context, db *gorm.DB, id uint, preloads ...string) (*T, error) {
	q := db.WithContext(ctx)
	for _, preload := range preloads {
		q = q.Preload(preload)
	}

	var entity T
	if err := q.First(&entity, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
