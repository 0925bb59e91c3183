// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"io"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobmatch/internal/payment/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/payment/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// 回调的请求体不会很大
const maxCallbackBody = 64 << 10

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
	l   *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc: svc,
		l:   elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/payments/pesapal/ipn", h.PesapalIPN)
	server.POST("/payments/pesapal/ipn", h.PesapalIPN)
	server.POST("/payments/mpesa/callback", h.MpesaCallback)
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/payments")
	g.POST("/pay", ginx.BS[PayReq](h.Pay))
	g.POST("/detail", ginx.BS[SNReq](h.Detail))
}

func (h *Handler) Pay(ctx *ginx.Context, req PayReq, sess session.Session) (ginx.Result, error) {
	pmt, err := h.svc.Pay(ctx.Request.Context(), sess.Claims().Uid, domain.PayRequest{
		Purpose:   domain.Purpose(req.Purpose),
		Channel:   domain.Channel(req.Channel),
		Phone:     req.Phone,
		PromoCode: req.PromoCode,
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newPayment(pmt)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req SNReq, sess session.Session) (ginx.Result, error) {
	pmt, err := h.svc.Detail(ctx.Request.Context(), sess.Claims().Uid, req.SN)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newPayment(pmt)}, nil
}

// PesapalIPN 需要按照 pesapal 的格式返回，不能用 ginx.Result
func (h *Handler) PesapalIPN(ctx *gin.Context) {
	var req PesapalIPN
	if err := ctx.ShouldBind(&req); err != nil || req.OrderTrackingId == "" {
		ctx.AbortWithStatus(http.StatusBadRequest)
		return
	}
	resp := PesapalIPNResp{
		OrderNotificationType:  req.OrderNotificationType,
		OrderTrackingId:        req.OrderTrackingId,
		OrderMerchantReference: req.OrderMerchantReference,
		Status:                 http.StatusOK,
	}
	_, err := h.svc.HandlePesapalIPN(ctx.Request.Context(), req.OrderTrackingId, req.OrderMerchantReference)
	if err != nil {
		h.l.Error("处理 pesapal IPN 失败",
			elog.FieldErr(err),
			elog.String("orderTrackingId", req.OrderTrackingId),
			elog.String("merchantRef", req.OrderMerchantReference))
		// 返回 500 之后 pesapal 会重试
		resp.Status = http.StatusInternalServerError
	}
	ctx.JSON(http.StatusOK, resp)
}

func (h *Handler) MpesaCallback(ctx *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxCallbackBody))
	if err != nil {
		ctx.AbortWithStatus(http.StatusBadRequest)
		return
	}
	err = h.svc.HandleMpesaCallback(ctx.Request.Context(), body)
	if err != nil {
		h.l.Error("处理 mpesa 回调失败", elog.FieldErr(err), elog.String("body", string(body)))
		ctx.JSON(http.StatusOK, MpesaCallbackResp{ResultCode: 1, ResultDesc: "Rejected"})
		return
	}
	ctx.JSON(http.StatusOK, MpesaCallbackResp{ResultCode: 0, ResultDesc: "Accepted"})
}
