package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"inkwell/contexts/identity/account-service/application"
	"inkwell/contexts/identity/account-service/ports"
	httptransport "inkwell/contexts/identity/account-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) SignupHandler(ctx context.Context, req httptransport.SignupRequest) (httptransport.AuthResponse, error) {
	result, err := h.Service.Signup(ctx, ports.SignupRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return httptransport.AuthResponse{}, err
	}
	return toAuthResponse(result), nil
}

func (h Handler) LoginHandler(ctx context.Context, req httptransport.LoginRequest) (httptransport.AuthResponse, error) {
	result, err := h.Service.Login(ctx, req.Email, req.Password)
	if err != nil {
		return httptransport.AuthResponse{}, err
	}
	return toAuthResponse(result), nil
}

func (h Handler) DemoLoginHandler(ctx context.Context) (httptransport.AuthResponse, error) {
	result, err := h.Service.DemoLogin(ctx)
	if err != nil {
		return httptransport.AuthResponse{}, err
	}
	return toAuthResponse(result), nil
}

func (h Handler) ListAccountsHandler(ctx context.Context) (httptransport.AccountListResponse, error) {
	views, err := h.Service.ListAccounts(ctx)
	if err != nil {
		return httptransport.AccountListResponse{}, err
	}
	resp := httptransport.AccountListResponse{Status: "success"}
	resp.Data = make([]httptransport.AccountPayload, 0, len(views))
	for _, view := range views {
		resp.Data = append(resp.Data, toPayload(view))
	}
	return resp, nil
}

func (h Handler) GetAccountHandler(ctx context.Context, id string) (httptransport.AccountResponse, error) {
	view, err := h.Service.GetAccount(ctx, id)
	if err != nil {
		return httptransport.AccountResponse{}, err
	}
	return httptransport.AccountResponse{Status: "success", Data: toPayload(view)}, nil
}

func (h Handler) UpdateAccountHandler(
	ctx context.Context,
	caller ports.Caller,
	id string,
	req httptransport.UpdateAccountRequest,
) (httptransport.AccountResponse, error) {
	view, err := h.Service.UpdateAccount(ctx, caller, id, ports.UpdateRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Status:   req.Status,
	})
	if err != nil {
		return httptransport.AccountResponse{}, err
	}
	return httptransport.AccountResponse{Status: "success", Data: toPayload(view)}, nil
}

func (h Handler) BecomeCreatorHandler(ctx context.Context, caller ports.Caller, id string) (httptransport.AuthResponse, error) {
	result, err := h.Service.BecomeCreator(ctx, caller, id)
	if err != nil {
		return httptransport.AuthResponse{}, err
	}
	return toAuthResponse(result), nil
}

func (h Handler) DeleteAccountHandler(ctx context.Context, caller ports.Caller, id string) (httptransport.DeleteAccountResponse, error) {
	deleted, err := h.Service.DeleteAccount(ctx, caller, id)
	if err != nil {
		return httptransport.DeleteAccountResponse{}, err
	}
	resp := httptransport.DeleteAccountResponse{Status: "success"}
	resp.Data.Deleted = deleted.ID
	return resp, nil
}

func toAuthResponse(result ports.AuthResult) httptransport.AuthResponse {
	resp := httptransport.AuthResponse{Status: "success"}
	resp.Data.Account = toPayload(result.Account)
	resp.Data.Token = result.Token
	return resp
}

func toPayload(view ports.AccountView) httptransport.AccountPayload {
	return httptransport.AccountPayload{
		ID:        view.ID,
		Name:      view.Name,
		Email:     view.Email,
		Role:      view.Role,
		Status:    view.Status,
		CreatedAt: view.CreatedAt.UTC().Format(time.RFC3339),
	}
}
