package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/shopdesk/api/responses"
	"github.com/angelmondragon/shopdesk/api/validators"
	"github.com/angelmondragon/shopdesk/internal/agents"
	"github.com/angelmondragon/shopdesk/pkg/logger"
)

type agentTeam interface {
	Chat(ctx context.Context, kind agents.Kind, message string) (*agents.Reply, error)
	Plan(ctx context.Context, request string) (*agents.Reply, error)
	RunWorkflow(ctx context.Context, name string) ([]*agents.WorkflowRun, error)
}

type chatRequest struct {
	Agent   string `json:"agent" validate:"required,max=64"`
	Message string `json:"message" validate:"required,max=2000"`
}

type planRequest struct {
	Request string `json:"request" validate:"required,max=2000"`
}

func AgentChat(team agentTeam, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		kind, err := agents.ParseKind(req.Agent)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		reply, err := team.Chat(r.Context(), kind, req.Message)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, reply)
	}
}

func AgentPlan(team agentTeam, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req planRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		reply, err := team.Plan(r.Context(), req.Request)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, reply)
	}
}

func WorkflowList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"workflows": agents.WorkflowNames()})
	}
}

// WorkflowRun executes {name} and returns every run transcript. Failed
// steps are reported inside the transcript, not as an error status.
func WorkflowRun(team agentTeam, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, err := validators.PathParam(r, "name")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		runs, err := team.RunWorkflow(r.Context(), name)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"runs": runs})
	}
}
