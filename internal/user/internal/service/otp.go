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
	"crypto/rand"
	"crypto/subtle"
	"math/big"
	"time"

	"github.com/ecodeclub/marketplace/internal/sms/client"
	"github.com/ecodeclub/marketplace/internal/user/internal/domain"
	"github.com/ecodeclub/marketplace/internal/user/internal/errs"
	"github.com/ecodeclub/marketplace/internal/user/internal/repository"
	"github.com/pkg/errors"
)

const (
	otpLength      = 6
	otpExpiration  = 5 * time.Minute
	otpResendAfter = time.Minute
	otpMaxAttempts = 3
)

//go:generate mockgen -source=./otp.go -package=svcmocks -destination=../../mocks/otp.mock.go OTPService
type OTPService interface {
	Send(ctx context.Context, phone string) error
	// Verify 校验成功后验证码立即作废
	Verify(ctx context.Context, phone, code string) error
}

type otpService struct {
	client     client.Client
	repo       repository.OTPRepository
	templateID string
	now        func() time.Time
	genCode    func() (string, error)
}

func NewOTPService(client client.Client, repo repository.OTPRepository, templateID string) OTPService {
	return &otpService{
		client:     client,
		repo:       repo,
		templateID: templateID,
		now:        time.Now,
		genCode:    generateCode,
	}
}

func (s *otpService) Send(ctx context.Context, phone string) error {
	now := s.now()
	old, err := s.repo.Find(ctx, phone)
	switch {
	case err == nil:
		if now.Sub(time.UnixMilli(old.SentAt)) < otpResendAfter {
			return errs.ErrOTPSendTooMany
		}
	case !errors.Is(err, repository.ErrOTPNotFound):
		return errors.Wrap(err, "查询验证码失败")
	}

	code, err := s.genCode()
	if err != nil {
		return errors.Wrap(err, "生成验证码失败")
	}
	err = s.repo.Save(ctx, phone, domain.OTPCode{
		Code:      code,
		SentAt:    now.UnixMilli(),
		ExpiresAt: now.Add(otpExpiration).UnixMilli(),
	})
	if err != nil {
		return errors.Wrap(err, "保存验证码失败")
	}
	resp, err := s.client.Send(ctx, client.SendReq{
		PhoneNumbers:  []string{phone},
		TemplateID:    s.templateID,
		TemplateParam: map[string]string{"code": code},
	})
	if err != nil {
		return errors.Wrap(err, "发送验证码失败")
	}
	if st := resp.PhoneNumbers[phone]; st.Code != client.OK {
		return errors.Errorf("发送验证码失败: %s", st.Message)
	}
	return nil
}

func (s *otpService) Verify(ctx context.Context, phone, code string) error {
	stored, err := s.repo.Find(ctx, phone)
	if errors.Is(err, repository.ErrOTPNotFound) {
		return errs.ErrOTPInvalid
	}
	if err != nil {
		return errors.Wrap(err, "查询验证码失败")
	}
	if s.now().UnixMilli() > stored.ExpiresAt {
		return errs.ErrOTPInvalid
	}
	if subtle.ConstantTimeCompare([]byte(stored.Code), []byte(code)) == 1 {
		return errors.Wrap(s.repo.Delete(ctx, phone), "作废验证码失败")
	}
	stored.Attempts++
	if stored.Attempts >= otpMaxAttempts {
		if err = s.repo.Delete(ctx, phone); err != nil {
			return errors.Wrap(err, "作废验证码失败")
		}
		return errs.ErrOTPTooManyErrors
	}
	if err = s.repo.Save(ctx, phone, stored); err != nil {
		return errors.Wrap(err, "更新验证码失败")
	}
	return errs.ErrOTPInvalid
}

func generateCode() (string, error) {
	buf := make([]byte, otpLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		buf[i] = byte('0' + n.Int64())
	}
	return string(buf), nil
}
