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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobmatch/internal/payment/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/payment/internal/repository/dao"
)

var (
	ErrPaymentNotFound = dao.ErrRecordNotFound
	ErrStatusConflict  = dao.ErrStatusConflict
)

//go:generate mockgen -source=./payment.go -package=repomocks -destination=mocks/payment.mock.go PaymentRepository
type PaymentRepository interface {
	Create(ctx context.Context, p domain.Payment) (int64, error)
	FindBySN(ctx context.Context, sn string) (domain.Payment, error)
	FindByProviderRef(ctx context.Context, channel domain.Channel, ref string) (domain.Payment, error)
	UpdateProvider(ctx context.Context, sn string, init domain.Initiation) error
	UpdateStatus(ctx context.Context, sn string, from, to domain.Status, paidAt int64) error
	FindPending(ctx context.Context, offset, limit int, ctime int64) ([]domain.Payment, error)
	CountPending(ctx context.Context, ctime int64) (int64, error)
}

type paymentRepository struct {
	dao dao.PaymentDAO
}

func NewPaymentRepository(d dao.PaymentDAO) PaymentRepository {
	return &paymentRepository{dao: d}
}

func (r *paymentRepository) Create(ctx context.Context, p domain.Payment) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(p))
}

func (r *paymentRepository) FindBySN(ctx context.Context, sn string) (domain.Payment, error) {
	p, err := r.dao.FindBySN(ctx, sn)
	return r.toDomain(p), err
}

func (r *paymentRepository) FindByProviderRef(ctx context.Context, channel domain.Channel, ref string) (domain.Payment, error) {
	p, err := r.dao.FindByProviderRef(ctx, channel.String(), ref)
	return r.toDomain(p), err
}

func (r *paymentRepository) UpdateProvider(ctx context.Context, sn string, init domain.Initiation) error {
	return r.dao.UpdateProvider(ctx, sn, init.ProviderRef, init.RedirectURL)
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, sn string, from, to domain.Status, paidAt int64) error {
	return r.dao.UpdateStatus(ctx, sn, from.String(), to.String(), paidAt)
}

func (r *paymentRepository) FindPending(ctx context.Context, offset, limit int, ctime int64) ([]domain.Payment, error) {
	list, err := r.dao.FindPending(ctx, offset, limit, ctime)
	return slice.Map(list, func(idx int, src dao.Payment) domain.Payment {
		return r.toDomain(src)
	}), err
}

func (r *paymentRepository) CountPending(ctx context.Context, ctime int64) (int64, error) {
	return r.dao.CountPending(ctx, ctime)
}

func (r *paymentRepository) toEntity(p domain.Payment) dao.Payment {
	return dao.Payment{
		Id:             p.Id,
		SN:             p.SN,
		Uid:            p.Uid,
		Purpose:        p.Purpose.String(),
		Days:           p.Days,
		OriginalAmount: p.OriginalAmount,
		Discount:       p.Discount,
		Amount:         p.Amount,
		Currency:       p.Currency,
		PromoCode:      p.PromoCode,
		Channel:        p.Channel.String(),
		Phone:          p.Phone,
		Status:         p.Status.String(),
		ProviderRef:    p.ProviderRef,
		RedirectURL:    p.RedirectURL,
		PaidAt:         p.PaidAt,
		Ctime:          p.Ctime,
		Utime:          p.Utime,
	}
}

func (r *paymentRepository) toDomain(p dao.Payment) domain.Payment {
	return domain.Payment{
		Id:             p.Id,
		SN:             p.SN,
		Uid:            p.Uid,
		Purpose:        domain.Purpose(p.Purpose),
		Days:           p.Days,
		OriginalAmount: p.OriginalAmount,
		Discount:       p.Discount,
		Amount:         p.Amount,
		Currency:       p.Currency,
		PromoCode:      p.PromoCode,
		Channel:        domain.Channel(p.Channel),
		Phone:          p.Phone,
		Status:         domain.Status(p.Status),
		ProviderRef:    p.ProviderRef,
		RedirectURL:    p.RedirectURL,
		PaidAt:         p.PaidAt,
		Ctime:          p.Ctime,
		Utime:          p.Utime,
	}
}
