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

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobmatch/internal/payment/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/payment/internal/event"
	"github.com/ecodeclub/jobmatch/internal/payment/internal/repository"
	"github.com/ecodeclub/jobmatch/internal/payment/internal/service/mpesa"
	"github.com/ecodeclub/jobmatch/internal/pkg/sequencenumber"
	"github.com/ecodeclub/jobmatch/internal/promo"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidPurpose     = errors.New("不支持的购买项目")
	ErrUnsupportedChannel = errors.New("不支持的支付渠道")
	ErrInvalidPhone       = errors.New("手机号不合法")
	ErrPaymentNotFound    = repository.ErrPaymentNotFound
	ErrChannel            = errors.New("支付渠道调用失败")
)

// Channel 第三方支付渠道
type Channel interface {
	Name() domain.Channel
	Initiate(ctx context.Context, p domain.Payment) (domain.Initiation, error)
	// Query 查询渠道那边的支付状态，还没有结果时返回 processing
	Query(ctx context.Context, p domain.Payment) (domain.Status, error)
}

//go:generate mockgen -source=./payment.go -package=svcmocks -destination=mocks/payment.mock.go Service Channel
type Service interface {
	Pay(ctx context.Context, uid int64, req domain.PayRequest) (domain.Payment, error)
	// HandlePesapalIPN 收到通知之后主动查询一次状态
	HandlePesapalIPN(ctx context.Context, orderTrackingId, merchantRef string) (domain.Payment, error)
	HandleMpesaCallback(ctx context.Context, body []byte) error
	// Detail 只能查看自己的支付记录
	Detail(ctx context.Context, uid int64, sn string) (domain.Payment, error)
	FindPending(ctx context.Context, offset, limit int, ctime int64) ([]domain.Payment, int64, error)
	// SyncPending 去渠道查询状态，有结果就更新
	SyncPending(ctx context.Context, p domain.Payment) (domain.Payment, error)
	CloseTimeout(ctx context.Context, p domain.Payment) error
}

type service struct {
	repo     repository.PaymentRepository
	channels map[domain.Channel]Channel
	promoSvc promo.Service
	sng      *sequencenumber.Generator
	producer event.PaymentEventProducer
	prices   map[domain.Purpose]domain.Price
	l        *elog.Component
}

func NewService(repo repository.PaymentRepository,
	channels []Channel,
	promoSvc promo.Service,
	sng *sequencenumber.Generator,
	p event.PaymentEventProducer,
	prices map[domain.Purpose]domain.Price) Service {
	return &service{
		repo: repo,
		channels: slice.ToMapV(channels, func(element Channel) (domain.Channel, Channel) {
			return element.Name(), element
		}),
		promoSvc: promoSvc,
		sng:      sng,
		producer: p,
		prices:   prices,
		l:        elog.DefaultLogger,
	}
}

func (s *service) Pay(ctx context.Context, uid int64, req domain.PayRequest) (domain.Payment, error) {
	price, ok := s.prices[req.Purpose]
	if !ok || price.Amount <= 0 {
		return domain.Payment{}, fmt.Errorf("%w: %s", ErrInvalidPurpose, req.Purpose)
	}
	ch, ok := s.channels[req.Channel]
	if !ok {
		return domain.Payment{}, fmt.Errorf("%w: %s", ErrUnsupportedChannel, req.Channel)
	}
	phone, ok := domain.NormalizePhone(req.Phone)
	if !ok {
		return domain.Payment{}, fmt.Errorf("%w: %s", ErrInvalidPhone, req.Phone)
	}
	pmt := domain.Payment{
		SN:             s.sng.Generate(uid),
		Uid:            uid,
		Purpose:        req.Purpose,
		Days:           price.Days,
		OriginalAmount: price.Amount,
		Amount:         price.Amount,
		Currency:       domain.CurrencyKES,
		Channel:        req.Channel,
		Phone:          phone,
		Status:         domain.StatusProcessing,
	}
	if req.PromoCode != "" {
		quote, err := s.promoSvc.Validate(ctx, req.PromoCode, price.Amount)
		if err != nil {
			return domain.Payment{}, err
		}
		pmt.PromoCode = quote.Code
		pmt.Discount = quote.Discount
		pmt.Amount = quote.Final
	}
	if pmt.IsFree() {
		return s.payFree(ctx, pmt)
	}

	var err error
	pmt.Id, err = s.repo.Create(ctx, pmt)
	if err != nil {
		return domain.Payment{}, err
	}
	init, err := ch.Initiate(ctx, pmt)
	if err != nil {
		if er := s.repo.UpdateStatus(ctx, pmt.SN, pmt.Status, domain.StatusPaidFailed, 0); er != nil {
			s.l.Error("标记支付失败出错", elog.FieldErr(er), elog.String("sn", pmt.SN))
		}
		return domain.Payment{}, fmt.Errorf("%w: %w", ErrChannel, err)
	}
	pmt.ProviderRef = init.ProviderRef
	pmt.RedirectURL = init.RedirectURL
	err = s.repo.UpdateProvider(ctx, pmt.SN, init)
	if err != nil {
		return domain.Payment{}, err
	}
	// 渠道受理之后才占用优惠码
	if pmt.PromoCode != "" {
		if er := s.promoSvc.Redeem(ctx, pmt.PromoCode); er != nil {
			s.l.Warn("占用优惠码失败",
				elog.FieldErr(er),
				elog.String("sn", pmt.SN),
				elog.String("code", pmt.PromoCode))
		}
	}
	return pmt, nil
}

// payFree 优惠之后金额为 0，不经过渠道直接成功
// 先落库再占用优惠码，落库失败不会白白消耗优惠码
func (s *service) payFree(ctx context.Context, pmt domain.Payment) (domain.Payment, error) {
	var err error
	pmt.Id, err = s.repo.Create(ctx, pmt)
	if err != nil {
		return domain.Payment{}, err
	}
	if err = s.promoSvc.Redeem(ctx, pmt.PromoCode); err != nil {
		if er := s.repo.UpdateStatus(ctx, pmt.SN, pmt.Status, domain.StatusPaidFailed, 0); er != nil {
			s.l.Error("标记支付失败出错", elog.FieldErr(er), elog.String("sn", pmt.SN))
		}
		return domain.Payment{}, err
	}
	return s.apply(ctx, pmt, domain.StatusPaidSuccess)
}

func (s *service) HandlePesapalIPN(ctx context.Context, orderTrackingId, merchantRef string) (domain.Payment, error) {
	pmt, err := s.repo.FindBySN(ctx, merchantRef)
	if err != nil {
		return domain.Payment{}, err
	}
	if pmt.Channel != domain.ChannelPesapal || pmt.ProviderRef != orderTrackingId {
		return domain.Payment{}, fmt.Errorf("%w: sn=%s orderTrackingId=%s", ErrPaymentNotFound, merchantRef, orderTrackingId)
	}
	return s.SyncPending(ctx, pmt)
}

func (s *service) HandleMpesaCallback(ctx context.Context, body []byte) error {
	cb, err := mpesa.ParseCallback(body)
	if err != nil {
		return err
	}
	pmt, err := s.repo.FindByProviderRef(ctx, domain.ChannelMpesa, cb.CheckoutRequestID)
	if err != nil {
		return err
	}
	s.l.Info("收到 mpesa 回调",
		elog.String("sn", pmt.SN),
		elog.Int("resultCode", cb.ResultCode),
		elog.String("receipt", cb.Receipt))
	_, err = s.apply(ctx, pmt, cb.Status())
	return err
}

func (s *service) Detail(ctx context.Context, uid int64, sn string) (domain.Payment, error) {
	pmt, err := s.repo.FindBySN(ctx, sn)
	if err != nil {
		return domain.Payment{}, err
	}
	if pmt.Uid != uid {
		return domain.Payment{}, fmt.Errorf("%w: sn=%s", ErrPaymentNotFound, sn)
	}
	return pmt, nil
}

func (s *service) FindPending(ctx context.Context, offset, limit int, ctime int64) ([]domain.Payment, int64, error) {
	var (
		eg    errgroup.Group
		list  []domain.Payment
		total int64
	)
	eg.Go(func() error {
		var err error
		list, err = s.repo.FindPending(ctx, offset, limit, ctime)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountPending(ctx, ctime)
		return err
	})
	return list, total, eg.Wait()
}

func (s *service) SyncPending(ctx context.Context, pmt domain.Payment) (domain.Payment, error) {
	if pmt.Status.IsTerminal() {
		return pmt, nil
	}
	ch, ok := s.channels[pmt.Channel]
	if !ok {
		return domain.Payment{}, fmt.Errorf("%w: %s", ErrUnsupportedChannel, pmt.Channel)
	}
	if pmt.ProviderRef == "" {
		// 没有被渠道受理过，只能等超时关闭
		return pmt, nil
	}
	status, err := ch.Query(ctx, pmt)
	if err != nil {
		return domain.Payment{}, err
	}
	return s.apply(ctx, pmt, status)
}

func (s *service) CloseTimeout(ctx context.Context, pmt domain.Payment) error {
	_, err := s.apply(ctx, pmt, domain.StatusTimeoutClosed)
	return err
}

// apply 终态只会被设置一次，重复的通知直接忽略
func (s *service) apply(ctx context.Context, pmt domain.Payment, status domain.Status) (domain.Payment, error) {
	if !status.IsTerminal() {
		return pmt, nil
	}
	if !pmt.Status.CanTransitionTo(status) {
		if pmt.Status != status {
			s.l.Warn("忽略终态之后的状态变更",
				elog.String("sn", pmt.SN),
				elog.String("current", pmt.Status.String()),
				elog.String("target", status.String()))
		}
		return pmt, nil
	}
	var paidAt int64
	if status == domain.StatusPaidSuccess {
		paidAt = time.Now().UnixMilli()
	}
	err := s.repo.UpdateStatus(ctx, pmt.SN, pmt.Status, status, paidAt)
	if errors.Is(err, repository.ErrStatusConflict) {
		// 回调和定时任务同时到达，以先到的为准
		return s.repo.FindBySN(ctx, pmt.SN)
	}
	if err != nil {
		return domain.Payment{}, err
	}
	pmt.Status = status
	pmt.PaidAt = paidAt
	if status == domain.StatusPaidSuccess {
		s.produce(ctx, pmt)
	}
	return pmt, nil
}

func (s *service) produce(ctx context.Context, pmt domain.Payment) {
	err := s.producer.Produce(ctx, event.PaymentEvent{
		SN:        pmt.SN,
		Uid:       pmt.Uid,
		Purpose:   pmt.Purpose.String(),
		Days:      pmt.Days,
		Amount:    pmt.Amount,
		Currency:  pmt.Currency,
		Channel:   pmt.Channel.String(),
		PromoCode: pmt.PromoCode,
		Phone:     pmt.Phone,
		Status:    pmt.Status.String(),
		PaidAt:    pmt.PaidAt,
	})
	if err != nil {
		s.l.Error("发送支付成功消息失败",
			elog.FieldErr(err),
			elog.String("sn", pmt.SN),
			elog.Int64("uid", pmt.Uid))
	}
}
