package contract

import (
	"encoding/json"
	"fmt"
	"smartshop/domain"
	"smartshop/errors"
)

type ResponseType string

const (
	TypeText         ResponseType = "text"
	TypeProductImage ResponseType = "product_image"
	TypeCartUpdated  ResponseType = "cart_updated"
	TypeContactAgent ResponseType = "contact_agent"
)

// ChatResponse is one decoded answer of the chat endpoint.
// The set of variants is closed: every value is one of the *Response types below.
type ChatResponse interface {
	Kind() ResponseType
	Meta() ResponseMeta
	sealed()
}

// ResponseMeta holds the fields shared by every variant.
type ResponseMeta struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id,omitempty"`
}

func (m ResponseMeta) Meta() ResponseMeta { return m }
func (ResponseMeta) sealed()              {}

type TextResponse struct {
	ResponseMeta
}

func (TextResponse) Kind() ResponseType { return TypeText }

// ProductImageResponse carries a nil Product when the backend sent none.
type ProductImageResponse struct {
	ResponseMeta
	Product *domain.Product `json:"product"`
}

func (ProductImageResponse) Kind() ResponseType { return TypeProductImage }

// CartUpdatedResponse carries a nil Cart when the backend sent no cart field.
type CartUpdatedResponse struct {
	ResponseMeta
	Cart domain.Cart `json:"cart"`
}

func (CartUpdatedResponse) Kind() ResponseType { return TypeCartUpdated }

type ContactAgentResponse struct {
	ResponseMeta
}

func (ContactAgentResponse) Kind() ResponseType { return TypeContactAgent }

// UnknownResponse keeps the raw tag of a type this client does not know.
type UnknownResponse struct {
	ResponseMeta
	Type string `json:"type"`
}

func (r UnknownResponse) Kind() ResponseType { return ResponseType(r.Type) }

// DecodeChatResponse reads the type tag first and decodes the matching variant.
// When a known variant is malformed the error wraps errors.ErrInvalidResponse and the
// returned UnknownResponse still carries the message and conversation id, if readable.
func DecodeChatResponse(raw []byte) (ChatResponse, error) {
	var head struct {
		ResponseMeta
		Type ResponseType `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		var meta ResponseMeta
		if json.Unmarshal(raw, &meta) != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrInvalidResponse, err)
		}
		return UnknownResponse{ResponseMeta: meta}, fmt.Errorf("%w: %v", errors.ErrInvalidResponse, err)
	}

	var (
		resp ChatResponse
		err  error
	)
	switch head.Type {
	case TypeText:
		resp, err = decodeVariant[TextResponse](raw)
	case TypeProductImage:
		resp, err = decodeVariant[ProductImageResponse](raw)
	case TypeCartUpdated:
		resp, err = decodeVariant[CartUpdatedResponse](raw)
	case TypeContactAgent:
		resp, err = decodeVariant[ContactAgentResponse](raw)
	default:
		resp, err = decodeVariant[UnknownResponse](raw)
	}
	if err != nil {
		return UnknownResponse{ResponseMeta: head.ResponseMeta, Type: string(head.Type)}, err
	}
	return resp, nil
}

func decodeVariant[T ChatResponse](raw []byte) (ChatResponse, error) {
	var variant T
	if err := json.Unmarshal(raw, &variant); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidResponse, err)
	}
	return variant, nil
}
