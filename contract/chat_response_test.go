package contract

import (
	"smartshop/domain"
	"smartshop/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeChatResponse_Variants(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		req := require.New(t)
		resp, err := DecodeChatResponse([]byte(`{"type":"text","message":"Bonjour","conversation_id":"c-1","pending_choice":null}`))
		req.NoError(err)
		text, ok := resp.(TextResponse)
		req.True(ok)
		req.Equal("Bonjour", text.Message)
		req.Equal("c-1", resp.Meta().ConversationID)
		req.Equal(TypeText, resp.Kind())
	})

	t.Run("product image", func(t *testing.T) {
		req := require.New(t)
		resp, err := DecodeChatResponse([]byte(`{
			"type":"product_image","message":"🖼️ Chemise",
			"product":{"id":"P1","name":"Chemise","price":15000,"image_url":"https://cdn/x.png","in_stock":true}
		}`))
		req.NoError(err)
		product, ok := resp.(ProductImageResponse)
		req.True(ok)
		req.Equal("P1", product.Product.ID)
		req.Equal("https://cdn/x.png", product.Product.ImageURL)
		req.NotNil(product.Product.InStock)
		req.True(*product.Product.InStock)
	})

	t.Run("product image without product keeps the message", func(t *testing.T) {
		req := require.New(t)
		resp, err := DecodeChatResponse([]byte(`{"type":"product_image","message":"Voici la chemise","conversation_id":"c1"}`))
		req.NoError(err)
		product, ok := resp.(ProductImageResponse)
		req.True(ok)
		req.Nil(product.Product)
		req.Equal("Voici la chemise", resp.Meta().Message)
		req.Equal("c1", resp.Meta().ConversationID)
	})

	t.Run("cart updated with string prices", func(t *testing.T) {
		req := require.New(t)
		resp, err := DecodeChatResponse([]byte(`{"type":"cart_updated","cart":[{"name":"Chemise","price":"15000"}],"message":"ajouté"}`))
		req.NoError(err)
		req.Equal(domain.Cart{{Name: "Chemise", Price: 15000}}, resp.(CartUpdatedResponse).Cart)
	})

	t.Run("cart updated with cart", func(t *testing.T) {
		req := require.New(t)
		resp, err := DecodeChatResponse([]byte(`{"type":"cart_updated","cart":[{"name":"Chemise","price":15000}],"message":"ok"}`))
		req.NoError(err)
		cart, ok := resp.(CartUpdatedResponse)
		req.True(ok)
		req.Equal(domain.Cart{{Name: "Chemise", Price: 15000}}, cart.Cart)
	})

	t.Run("cart updated without cart", func(t *testing.T) {
		req := require.New(t)
		resp, err := DecodeChatResponse([]byte(`{"type":"cart_updated","message":"ok"}`))
		req.NoError(err)
		req.Nil(resp.(CartUpdatedResponse).Cart)
	})

	t.Run("cart updated with empty cart", func(t *testing.T) {
		req := require.New(t)
		resp, err := DecodeChatResponse([]byte(`{"type":"cart_updated","cart":[],"message":"vidé"}`))
		req.NoError(err)
		cart := resp.(CartUpdatedResponse).Cart
		req.NotNil(cart)
		req.Empty(cart)
	})

	t.Run("contact agent", func(t *testing.T) {
		req := require.New(t)
		resp, err := DecodeChatResponse([]byte(`{"type":"contact_agent","message":"Connecting..."}`))
		req.NoError(err)
		_, ok := resp.(ContactAgentResponse)
		req.True(ok)
		req.Equal("Connecting...", resp.Meta().Message)
	})

	t.Run("unknown type", func(t *testing.T) {
		req := require.New(t)
		resp, err := DecodeChatResponse([]byte(`{"type":"carousel","message":"new stuff"}`))
		req.NoError(err)
		unknown, ok := resp.(UnknownResponse)
		req.True(ok)
		req.Equal(ResponseType("carousel"), unknown.Kind())
		req.Equal("new stuff", unknown.Message)
	})

	t.Run("missing type", func(t *testing.T) {
		req := require.New(t)
		resp, err := DecodeChatResponse([]byte(`{"message":"hello"}`))
		req.NoError(err)
		_, ok := resp.(UnknownResponse)
		req.True(ok)
	})

	t.Run("malformed payload", func(t *testing.T) {
		_, err := DecodeChatResponse([]byte(`{"type":`))
		require.ErrorIs(t, err, errors.ErrInvalidResponse)
	})

	t.Run("wrongly typed field keeps the meta fields", func(t *testing.T) {
		req := require.New(t)
		resp, err := DecodeChatResponse([]byte(`{"type":"cart_updated","cart":"nope","message":"ok","conversation_id":"c2"}`))
		req.ErrorIs(err, errors.ErrInvalidResponse)
		req.NotNil(resp)
		req.Equal("ok", resp.Meta().Message)
		req.Equal("c2", resp.Meta().ConversationID)
	})
}
