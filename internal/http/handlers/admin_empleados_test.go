package handlers_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmoralesgt/empleados-api/internal/domain/employee"
	"github.com/dmoralesgt/empleados-api/internal/http/handlers"
	"github.com/shopspring/decimal"
)

type fakeEmployeeWriter struct {
	createFn  func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error)
	updateFn  func(ctx context.Context, id int, req employee.UpdateEmployeeRequest) error
	disableFn func(ctx context.Context, id int) error
	deleteFn  func(ctx context.Context, id int) error
}

func (f *fakeEmployeeWriter) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}
	return employee.Employee{}, nil
}

func (f *fakeEmployeeWriter) Update(ctx context.Context, id int, req employee.UpdateEmployeeRequest) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, req)
	}
	return nil
}

func (f *fakeEmployeeWriter) Disable(ctx context.Context, id int) error {
	if f.disableFn != nil {
		return f.disableFn(ctx, id)
	}
	return nil
}

func (f *fakeEmployeeWriter) Delete(ctx context.Context, id int) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func TestCrearEmpleadoHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		storeSetup     func(*fakeEmployeeWriter)
		wantStatusCode int
	}{
		{
			name: "success",
			body: `{
				"nombre": "Juan Pérez",
				"dpi": "1234567890101",
				"correo": "juan@example.com",
				"limiteCredito": 5000,
				"saldo": 0
			}`,
			storeSetup: func(f *fakeEmployeeWriter) {
				f.createFn = func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
					return employee.Employee{
						ID:            1,
						Nombre:        req.Nombre,
						DPI:           req.DPI,
						Correo:        req.Correo,
						LimiteCredito: req.LimiteCredito,
						Saldo:         req.Saldo,
						Activo:        true,
					}, nil
				}
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name: "validation_error",
			body: `{"nombre": ""}`,
			storeSetup: func(f *fakeEmployeeWriter) {
				// repo should not be called for an invalid payload
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "store_error",
			body: `{
				"nombre": "Juan Pérez",
				"dpi": "1234567890101",
				"correo": "juan@example.com",
				"limiteCredito": 5000,
				"saldo": 0
			}`,
			storeSetup: func(f *fakeEmployeeWriter) {
				f.createFn = func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
					return employee.Employee{}, errors.New("db error")
				}
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			store := &fakeEmployeeWriter{}

			if tt.storeSetup != nil {
				tt.storeSetup(store)
			}

			h := handlers.NewAdminEmpleadosHandler(store)

			r := setupRouter(http.MethodPost, "/crear-empleado", h.CrearEmpleado)

			req := httptest.NewRequest(http.MethodPost, "/crear-empleado", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatusCode, w.Body.String())
			}
		})
	}
}

func TestEditarEmpleadoHandler(t *testing.T) {
	validBody := `{
		"nombre": "Juan Actualizado",
		"correo": "juan2@example.com",
		"limiteCredito": 8000,
		"saldo": 100
	}`

	tests := []struct {
		name           string
		url            string
		body           string
		storeSetup     func(*fakeEmployeeWriter)
		wantStatusCode int
	}{
		{
			name: "success",
			url:  "/editar-empleado/1",
			body: validBody,
			storeSetup: func(f *fakeEmployeeWriter) {
				f.updateFn = func(ctx context.Context, id int, req employee.UpdateEmployeeRequest) error {
					if id != 1 {
						return errors.New("unexpected id")
					}
					if !req.LimiteCredito.Equal(decimal.NewFromInt(8000)) {
						return errors.New("limiteCredito not bound")
					}
					return nil
				}
			},
			wantStatusCode: http.StatusOK,
		},
		{
			// there is no existence check on this path
			name:           "missing_id_still_succeeds",
			url:            "/editar-empleado/424242",
			body:           validBody,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "non_numeric_id",
			url:            "/editar-empleado/abc",
			body:           validBody,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "validation_error",
			url:            "/editar-empleado/1",
			body:           `{"correo": "not-an-email"}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "store_error",
			url:  "/editar-empleado/1",
			body: validBody,
			storeSetup: func(f *fakeEmployeeWriter) {
				f.updateFn = func(ctx context.Context, id int, req employee.UpdateEmployeeRequest) error {
					return errors.New("db error")
				}
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			store := &fakeEmployeeWriter{}

			if tt.storeSetup != nil {
				tt.storeSetup(store)
			}

			h := handlers.NewAdminEmpleadosHandler(store)

			r := setupRouter(http.MethodPut, "/editar-empleado/:id", h.EditarEmpleado)

			req := httptest.NewRequest(http.MethodPut, tt.url, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatusCode, w.Body.String())
			}
		})
	}
}

func TestDeshabilitarEmpleadoIsIdempotent(t *testing.T) {
	calls := 0
	store := &fakeEmployeeWriter{
		disableFn: func(ctx context.Context, id int) error {
			calls++
			return nil
		},
	}

	h := handlers.NewAdminEmpleadosHandler(store)
	r := setupRouter(http.MethodPut, "/deshabilitar-empleado/:id", h.DeshabilitarEmpleado)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPut, "/deshabilitar-empleado/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("call %d got status %d, want %d, body=%s", i+1, w.Code, http.StatusOK, w.Body.String())
		}
	}

	if calls != 2 {
		t.Fatalf("got %d disable calls, want 2", calls)
	}
}

func TestDeshabilitarEmpleadoStoreError(t *testing.T) {
	store := &fakeEmployeeWriter{
		disableFn: func(ctx context.Context, id int) error {
			return errors.New("db error")
		},
	}

	h := handlers.NewAdminEmpleadosHandler(store)
	r := setupRouter(http.MethodPut, "/deshabilitar-empleado/:id", h.DeshabilitarEmpleado)

	req := httptest.NewRequest(http.MethodPut, "/deshabilitar-empleado/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestEliminarEmpleadoHandler(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		storeSetup     func(*fakeEmployeeWriter)
		wantStatusCode int
	}{
		{
			name:           "success",
			url:            "/99",
			wantStatusCode: http.StatusOK,
		},
		{
			// deleting a missing id is not a distinct error
			name: "missing_id_still_succeeds",
			url:  "/424242",
			storeSetup: func(f *fakeEmployeeWriter) {
				f.deleteFn = func(ctx context.Context, id int) error {
					return nil
				}
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "store_error",
			url:  "/99",
			storeSetup: func(f *fakeEmployeeWriter) {
				f.deleteFn = func(ctx context.Context, id int) error {
					return errors.New("db error")
				}
			},
			wantStatusCode: http.StatusInternalServerError,
		},
		{
			name:           "non_numeric_id",
			url:            "/abc",
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			store := &fakeEmployeeWriter{}

			if tt.storeSetup != nil {
				tt.storeSetup(store)
			}

			h := handlers.NewAdminEmpleadosHandler(store)

			r := setupRouter(http.MethodDelete, "/:id", h.EliminarEmpleado)

			req := httptest.NewRequest(http.MethodDelete, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatusCode, w.Body.String())
			}
		})
	}
}
