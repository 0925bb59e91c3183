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
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobmatch/internal/payment/internal/errs"
	"github.com/ecodeclub/jobmatch/internal/payment/internal/service"
	"github.com/ecodeclub/jobmatch/internal/promo"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

func errorResult(err error) (ginx.Result, error) {
	var code errs.ErrorCode
	switch {
	case errors.Is(err, service.ErrInvalidPurpose):
		code = errs.InvalidPurpose
	case errors.Is(err, service.ErrUnsupportedChannel):
		code = errs.UnsupportedChannel
	case errors.Is(err, service.ErrInvalidPhone):
		code = errs.InvalidPhone
	case errors.Is(err, promo.ErrPromoNotFound),
		errors.Is(err, promo.ErrPromoExpired),
		errors.Is(err, promo.ErrPromoExhausted),
		errors.Is(err, promo.ErrPromoInactive):
		return ginx.Result{Code: errs.InvalidPromo.Code, Msg: err.Error()}, nil
	case errors.Is(err, service.ErrPaymentNotFound):
		code = errs.PaymentNotFound
	case errors.Is(err, service.ErrChannel):
		// 渠道的错误需要记录日志
		return ginx.Result{Code: errs.ChannelError.Code, Msg: errs.ChannelError.Msg}, err
	default:
		return systemErrorResult, err
	}
	return ginx.Result{Code: code.Code, Msg: code.Msg}, nil
}
