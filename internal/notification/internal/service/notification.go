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
	"math"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobmatch/internal/email"
	"github.com/ecodeclub/jobmatch/internal/notification/internal/domain"
	"github.com/ecodeclub/jobmatch/internal/sms/client"
	"github.com/ecodeclub/jobmatch/internal/user"
	"github.com/gotomicro/ego/core/elog"
)

var ErrRecipientNotFound = errors.New("收件人不存在")

//go:generate mockgen -source=./notification.go -package=svcmocks -destination=mocks/notification.mock.go Service
type Service interface {
	Welcome(ctx context.Context, w domain.Welcome) error
	// ApplicationCreated 同时通知招聘方和投递人
	ApplicationCreated(ctx context.Context, app domain.Application) error
	// ApplicationStatusChanged 通知投递人，有手机号的时候再发一条短信
	ApplicationStatusChanged(ctx context.Context, app domain.Application) error
	PaymentReceipt(ctx context.Context, p domain.Payment) error
}

type service struct {
	userSvc user.Service
	mail    email.Service
	sms     client.Client
	l       *elog.Component
}

func NewService(userSvc user.Service, mail email.Service, sms client.Client) Service {
	return &service{
		userSvc: userSvc,
		mail:    mail,
		sms:     sms,
		l:       elog.DefaultLogger,
	}
}

func (s *service) Welcome(ctx context.Context, w domain.Welcome) error {
	r := domain.Recipient{Uid: w.Uid, Name: w.Name, Email: w.Email}
	body, err := render(tplWelcome, map[string]any{
		"Name": r.DisplayName(),
		"Role": domain.StatusLabel(w.Role),
	})
	if err != nil {
		return err
	}
	return s.sendMail(ctx, r, "Welcome to JobMatch", body)
}

func (s *service) ApplicationCreated(ctx context.Context, app domain.Application) error {
	rs, err := s.recipients(ctx, app.ApplicantId, app.RecruiterId)
	if err != nil {
		return err
	}
	applicant, recruiter := rs[app.ApplicantId], rs[app.RecruiterId]
	score := percent(app.MatchScore)
	var errs []error
	if recruiter.Email != "" {
		body, er := render(tplApplicationRecruiter, map[string]any{
			"Name":      recruiter.DisplayName(),
			"Applicant": applicant.DisplayName(),
			"JobTitle":  app.JobTitle,
			"Score":     score,
		})
		if er == nil {
			er = s.sendMail(ctx, recruiter, "New application: "+app.JobTitle, body)
		}
		errs = append(errs, er)
	}
	if applicant.Email != "" {
		body, er := render(tplApplicationApplicant, map[string]any{
			"Name":     applicant.DisplayName(),
			"JobTitle": app.JobTitle,
			"Company":  app.Company,
			"Score":    score,
		})
		if er == nil {
			er = s.sendMail(ctx, applicant, "Application received: "+app.JobTitle, body)
		}
		errs = append(errs, er)
	}
	return errors.Join(errs...)
}

func (s *service) ApplicationStatusChanged(ctx context.Context, app domain.Application) error {
	rs, err := s.recipients(ctx, app.ApplicantId)
	if err != nil {
		return err
	}
	applicant, ok := rs[app.ApplicantId]
	if !ok {
		return fmt.Errorf("%w: uid=%d", ErrRecipientNotFound, app.ApplicantId)
	}
	status := domain.StatusLabel(app.Status)
	body, err := render(tplApplicationStatus, map[string]any{
		"Name":     applicant.DisplayName(),
		"JobTitle": app.JobTitle,
		"Company":  app.Company,
		"Status":   status,
		"Note":     app.Note,
	})
	if err != nil {
		return err
	}
	err = s.sendMail(ctx, applicant, "Application update: "+app.JobTitle, body)
	s.sendSMS(ctx, applicant, fmt.Sprintf("JobMatch: your application for %s at %s is now %s.",
		app.JobTitle, app.Company, status))
	return err
}

func (s *service) PaymentReceipt(ctx context.Context, p domain.Payment) error {
	rs, err := s.recipients(ctx, p.Uid)
	if err != nil {
		return err
	}
	payer, ok := rs[p.Uid]
	if !ok {
		return fmt.Errorf("%w: uid=%d", ErrRecipientNotFound, p.Uid)
	}
	amount := domain.FormatAmount(p.Amount, p.Currency)
	body, err := render(tplPaymentReceipt, map[string]any{
		"Name":      payer.DisplayName(),
		"Amount":    amount,
		"Days":      p.Days,
		"SN":        p.SN,
		"Channel":   p.Channel,
		"PromoCode": p.PromoCode,
		"PaidAt":    time.UnixMilli(p.PaidAt).UTC().Format(time.RFC1123),
	})
	if err != nil {
		return err
	}
	err = s.sendMail(ctx, payer, "Payment receipt "+p.SN, body)
	if p.Phone != "" {
		payer.Phone = p.Phone
	}
	s.sendSMS(ctx, payer, fmt.Sprintf("JobMatch: payment of %s received. Ref %s. Premium active for %d days.",
		amount, p.SN, p.Days))
	return err
}

func (s *service) recipients(ctx context.Context, ids ...int64) (map[int64]domain.Recipient, error) {
	users, err := s.userSvc.FindByIds(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("查询收件人失败: %w", err)
	}
	return slice.ToMapV(users, func(u user.User) (int64, domain.Recipient) {
		return u.Id, domain.Recipient{
			Uid:   u.Id,
			Name:  u.Name,
			Email: u.Email,
			Phone: u.Phone,
		}
	}), nil
}

func (s *service) sendMail(ctx context.Context, r domain.Recipient, subject string, body []byte) error {
	if r.Email == "" {
		return fmt.Errorf("%w: uid=%d 没有邮箱", ErrRecipientNotFound, r.Uid)
	}
	err := s.mail.SendMail(ctx, email.Mail{
		To:      r.Email,
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		return fmt.Errorf("发送邮件失败 uid=%d: %w", r.Uid, err)
	}
	return nil
}

// sendSMS 短信只是补充，失败了不影响邮件
func (s *service) sendSMS(ctx context.Context, r domain.Recipient, msg string) {
	phone, ok := r.SMSNumber()
	if !ok {
		return
	}
	_, err := s.sms.Send(ctx, client.SendReq{
		PhoneNumbers: []string{phone},
		Message:      msg,
	})
	if err != nil {
		s.l.Warn("发送短信失败",
			elog.FieldErr(err),
			elog.Int64("uid", r.Uid))
	}
}

func percent(score float64) float64 {
	return math.Round(score*1000) / 10
}
