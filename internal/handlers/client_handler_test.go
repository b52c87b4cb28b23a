package handlers

import (
	"fmt"
	"net/http"
	"testing"
)

func validClientBody() map[string]any {
	return map[string]any{
		"full_name":    "Maria Silva",
		"birth_date":   "1990-05-12",
		"gender":       "female",
		"cpf":          "111.444.777-35",
		"email":        "maria@example.com",
		"phone":        "(11) 98888-7777",
		"zip_code":     "01310-100",
		"address":      "Av. Paulista",
		"number":       "1000",
		"neighborhood": "Bela Vista",
		"city":         "São Paulo",
		"state":        "SP",
		"status":       "active",
	}
}

func TestClientCreate(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedLogin(t)

	t.Run("cria cliente com status traduzido na resposta", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/clients", token, validClientBody())
		if w.Code != http.StatusCreated {
			t.Fatalf("esperava 201, obteve %d (%s)", w.Code, w.Body.String())
		}

		body := decodeBody(t, w)
		if body["message"] != "Cliente criado com sucesso!" {
			t.Errorf("mensagem inesperada: %v", body["message"])
		}

		client := body["client"].(map[string]any)
		if client["status"] != "Ativo" {
			t.Errorf("esperava status Ativo, obteve %v", client["status"])
		}
	})

	t.Run("campos obrigatórios ausentes acumulam erros", func(t *testing.T) {
		w := env.request(t, http.MethodPost, "/api/clients", token, map[string]any{})
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("esperava 422, obteve %d", w.Code)
		}

		errs := decodeBody(t, w)["errors"].(map[string]any)
		for _, field := range []string{"full_name", "birth_date", "gender", "cpf", "email", "phone", "zip_code", "address", "number", "neighborhood", "city", "state", "status"} {
			if errs[field] == nil {
				t.Errorf("esperava erro para %s", field)
			}
		}
	})

	t.Run("status fora do domínio devolve 422", func(t *testing.T) {
		body := validClientBody()
		body["cpf"] = "935.411.347-80"
		body["email"] = "outro@example.com"
		body["status"] = "arquivado"

		w := env.request(t, http.MethodPost, "/api/clients", token, body)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("esperava 422, obteve %d", w.Code)
		}

		errs := decodeBody(t, w)["errors"].(map[string]any)
		if errs["status"] == nil {
			t.Errorf("esperava erro de status, obteve %v", errs)
		}
	})

	t.Run("cpf duplicado devolve 422", func(t *testing.T) {
		body := validClientBody()
		body["email"] = "maria2@example.com"

		w := env.request(t, http.MethodPost, "/api/clients", token, body)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("esperava 422, obteve %d", w.Code)
		}

		errs := decodeBody(t, w)["errors"].(map[string]any)
		msgs := errs["cpf"].([]any)
		if len(msgs) == 0 || msgs[0] != "O CPF informado já está em uso." {
			t.Errorf("mensagem inesperada: %v", msgs)
		}
	})
}

func TestClientListFilters(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedLogin(t)

	for i, c := range []map[string]any{
		validClientBody(),
		{
			"full_name": "Mariana Souza", "birth_date": "1985-01-01", "gender": "female",
			"cpf": "935.411.347-80", "email": "mariana@example.com", "phone": "(11) 97777-6666",
			"zip_code": "01310-100", "address": "Rua A", "number": "1", "neighborhood": "Centro",
			"city": "São Paulo", "state": "SP", "status": "inactive",
		},
	} {
		w := env.request(t, http.MethodPost, "/api/clients", token, c)
		if w.Code != http.StatusCreated {
			t.Fatalf("seed %d: esperava 201, obteve %d (%s)", i, w.Code, w.Body.String())
		}
	}

	t.Run("filtro de substring no nome", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/clients?full_name=Maria", token, nil)
		body := decodeBody(t, w)
		if body["total"].(float64) != 2 {
			t.Errorf("esperava total 2, obteve %v", body["total"])
		}
	})

	t.Run("filtro exato de status", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/clients?status=inactive", token, nil)
		body := decodeBody(t, w)
		if body["total"].(float64) != 1 {
			t.Errorf("esperava total 1, obteve %v", body["total"])
		}
	})

	t.Run("colunas fixas do cadastro de clientes", func(t *testing.T) {
		w := env.request(t, http.MethodGet, "/api/clients", token, nil)
		body := decodeBody(t, w)

		columns := body["columns"].([]any)
		if len(columns) != 6 {
			t.Fatalf("esperava 6 colunas, obteve %d", len(columns))
		}
		first := columns[0].(map[string]any)
		if first["label"] != "Nome" || first["field"] != "full_name" {
			t.Errorf("coluna inesperada: %v", first)
		}
	})
}

func TestClientDelete(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedLogin(t)

	w := env.request(t, http.MethodPost, "/api/clients", token, validClientBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("esperava 201, obteve %d", w.Code)
	}
	client := decodeBody(t, w)["client"].(map[string]any)
	id := client["id"].(float64)

	path := fmt.Sprintf("/api/clients/%.0f", id)
	w = env.request(t, http.MethodDelete, path, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("esperava 200, obteve %d", w.Code)
	}
	if body := decodeBody(t, w); body["message"] != "Cliente removido com sucesso!" {
		t.Errorf("mensagem inesperada: %v", body["message"])
	}

	w = env.request(t, http.MethodGet, path, token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("esperava 404 após remoção, obteve %d", w.Code)
	}
}
