package repository

import (
	"context"
	"testing"
)

func TestAppointmentRepositoryList(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewAppointmentRepository(db, nil)

	profile := seedProfile(t, db, "Esteticista", true)
	user := seedUser(t, db, "Dra. Paula", "paula@example.com", "52998224725", profile.ID)
	maria := seedClient(t, db, "Maria Silva", "11144477735", "maria@example.com", "active")
	joao := seedClient(t, db, "João Pedro", "93541134780", "joao@example.com", "active")

	seedAppointment(t, db, maria.ID, user.ID, "2026-09-01", "14:00", "scheduled")
	seedAppointment(t, db, maria.ID, user.ID, "2026-09-02", "16:00", "completed")
	seedAppointment(t, db, joao.ID, user.ID, "2026-09-02", "09:00", "scheduled")
	seedAppointment(t, db, joao.ID, user.ID, "2026-08-20", "10:00", "canceled")

	t.Run("ordena por data decrescente e hora crescente", func(t *testing.T) {
		appointments, total, err := repo.List(ctx, ListParams{})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if total != 4 {
			t.Fatalf("esperava total 4, obteve %d", total)
		}

		want := []struct{ date, hour string }{
			{"2026-09-02", "09:00"},
			{"2026-09-02", "16:00"},
			{"2026-09-01", "14:00"},
			{"2026-08-20", "10:00"},
		}
		for i, w := range want {
			if appointments[i].Date != w.date || appointments[i].Time != w.hour {
				t.Errorf("posição %d: esperava %s %s, obteve %s %s",
					i, w.date, w.hour, appointments[i].Date, appointments[i].Time)
			}
		}
	})

	t.Run("carrega cliente e profissional", func(t *testing.T) {
		appointments, _, err := repo.List(ctx, ListParams{Limit: 1})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if appointments[0].Client == nil || appointments[0].Client.FullName == "" {
			t.Error("esperava cliente carregado na listagem")
		}
		if appointments[0].User == nil || appointments[0].User.Name == "" {
			t.Error("esperava profissional carregado na listagem")
		}
	})

	t.Run("filtra por nome do cliente via join", func(t *testing.T) {
		appointments, total, err := repo.List(ctx, ListParams{
			Filters: map[string]string{"client_name": "Maria"},
		})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if total != 2 {
			t.Errorf("esperava total 2, obteve %d", total)
		}
		for _, a := range appointments {
			if a.ClientID != maria.ID {
				t.Errorf("atendimento de outro cliente no resultado: %d", a.ClientID)
			}
		}
	})

	t.Run("filtra por data exata", func(t *testing.T) {
		_, total, err := repo.List(ctx, ListParams{
			Filters: map[string]string{"date": "2026-09-02"},
		})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if total != 2 {
			t.Errorf("esperava total 2, obteve %d", total)
		}
	})

	t.Run("filtra por status", func(t *testing.T) {
		_, total, err := repo.List(ctx, ListParams{
			Filters: map[string]string{"status": "canceled"},
		})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if total != 1 {
			t.Errorf("esperava total 1, obteve %d", total)
		}
	})
}

func TestAppointmentRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewAppointmentRepository(db, nil)

	profile := seedProfile(t, db, "Esteticista", true)
	user := seedUser(t, db, "Dra. Paula", "paula@example.com", "52998224725", profile.ID)
	client := seedClient(t, db, "Maria Silva", "11144477735", "maria@example.com", "active")

	t.Run("persiste o status informado", func(t *testing.T) {
		appointment, err := repo.Create(ctx, AppointmentPayload{
			ClientID:  uintPtr(client.ID),
			UserID:    uintPtr(user.ID),
			Date:      strPtr("2026-09-10"),
			Procedure: strPtr("Peeling"),
			Status:    strPtr("scheduled"),
		})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if appointment.Status != "scheduled" {
			t.Errorf("esperava scheduled, obteve %s", appointment.Status)
		}
		if appointment.Client == nil || appointment.User == nil {
			t.Error("esperava cliente e profissional carregados após criação")
		}
	})

	t.Run("hora de um dígito é completada para HH:MM", func(t *testing.T) {
		appointment, err := repo.Create(ctx, AppointmentPayload{
			ClientID:  uintPtr(client.ID),
			UserID:    uintPtr(user.ID),
			Date:      strPtr("2026-09-12"),
			Time:      strPtr("9:30"),
			Procedure: strPtr("Limpeza de pele"),
			Status:    strPtr("scheduled"),
		})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if appointment.Time != "09:30" {
			t.Errorf("esperava 09:30, obteve %q", appointment.Time)
		}
	})

	t.Run("produtos utilizados fazem ida e volta", func(t *testing.T) {
		appointment, err := repo.Create(ctx, AppointmentPayload{
			ClientID:     uintPtr(client.ID),
			UserID:       uintPtr(user.ID),
			Date:         strPtr("2026-09-11"),
			Time:         strPtr("15:30"),
			Procedure:    strPtr("Drenagem"),
			ProductsUsed: &[]string{"Ácido hialurônico", "Creme pós-procedimento"},
			Price:        floatPtr(180),
			Status:       strPtr("scheduled"),
		})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		saved, err := repo.FindByID(ctx, appointment.ID)
		if err != nil || saved == nil {
			t.Fatalf("esperava atendimento salvo, obteve (%v, %v)", saved, err)
		}
		if len(saved.ProductsUsed) != 2 || saved.ProductsUsed[0] != "Ácido hialurônico" {
			t.Errorf("esperava produtos preservados, obteve %v", saved.ProductsUsed)
		}
		if saved.Price == nil || *saved.Price != 180 {
			t.Errorf("esperava preço 180, obteve %v", saved.Price)
		}
	})
}

func TestAppointmentRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewAppointmentRepository(db, nil)

	profile := seedProfile(t, db, "Esteticista", true)
	user := seedUser(t, db, "Dra. Paula", "paula@example.com", "52998224725", profile.ID)
	client := seedClient(t, db, "Maria Silva", "11144477735", "maria@example.com", "active")
	appointment := seedAppointment(t, db, client.ID, user.ID, "2026-09-01", "14:00", "scheduled")

	t.Run("transição de status é livre", func(t *testing.T) {
		updated, err := repo.Update(ctx, appointment.ID, AppointmentPayload{
			Status: strPtr("completed"),
		})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if updated.Status != "completed" {
			t.Errorf("esperava completed, obteve %s", updated.Status)
		}

		updated, err = repo.Update(ctx, appointment.ID, AppointmentPayload{
			Status: strPtr("scheduled"),
		})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if updated.Status != "scheduled" {
			t.Errorf("esperava voltar para scheduled, obteve %s", updated.Status)
		}
	})

	t.Run("id inexistente retorna nil sem erro", func(t *testing.T) {
		updated, err := repo.Update(ctx, 9999, AppointmentPayload{Status: strPtr("completed")})
		if err != nil {
			t.Fatalf("esperava nil, obteve erro: %v", err)
		}
		if updated != nil {
			t.Errorf("esperava nil, obteve %+v", updated)
		}
	})
}
