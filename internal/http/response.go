package http

import "social-api/internal/domain"

type AccountResponse struct {
	ID       int64  `json:"account_id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type MessageResponse struct {
	ID              int64  `json:"message_id"`
	PostedBy        int64  `json:"posted_by"`
	Text            string `json:"message_text"`
	TimePostedEpoch int64  `json:"time_posted_epoch"`
}

func accountToResponse(account domain.Account) AccountResponse {
	return AccountResponse{
		ID:       account.ID,
		Username: account.Username,
		Password: account.Password,
	}
}

func messageToResponse(msg domain.Message) MessageResponse {
	return MessageResponse{
		ID:              msg.ID,
		PostedBy:        msg.PostedBy,
		Text:            msg.Text,
		TimePostedEpoch: msg.TimePostedEpoch,
	}
}

func messagesToResponse(messages []domain.Message) []MessageResponse {
	resp := make([]MessageResponse, len(messages))
	for i := range messages {
		resp[i] = messageToResponse(messages[i])
	}
	return resp
}
