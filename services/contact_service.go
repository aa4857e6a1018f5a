package services

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/Bossbrown1770/AUTO-CAR/models"
	"github.com/Bossbrown1770/AUTO-CAR/repository"
)

// ContactService handles store-and-forward intake: contact messages and car
// inquiries.
type ContactService interface {
	SubmitContactMessage(ctx context.Context, msg *models.ContactMessage) *ServiceError
	SubmitInquiry(ctx context.Context, req *models.InquiryRequest) (*models.CarInquiry, *ServiceError)
}

type contactServiceImpl struct {
	contactRepo repository.ContactRepository
	inquiryRepo repository.InquiryRepository
	notifier    Notifier
	logger      *zap.Logger
}

// NewContactService creates a new ContactService.
func NewContactService(
	contactRepo repository.ContactRepository,
	inquiryRepo repository.InquiryRepository,
	notifier Notifier,
	logger *zap.Logger,
) ContactService {
	return &contactServiceImpl{
		contactRepo: contactRepo,
		inquiryRepo: inquiryRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *contactServiceImpl) SubmitContactMessage(ctx context.Context, msg *models.ContactMessage) *ServiceError {
	if err := s.contactRepo.Create(ctx, msg); err != nil {
		s.logger.Error("Failed to store contact message", zap.Error(err))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to send message"}
	}

	phone := msg.Phone
	if phone == "" {
		phone = "N/A"
	}
	s.notifier.Notify(ctx, fmt.Sprintf(`📧 *New Contact Message*

*From:* %s
*Email:* %s
*Phone:* %s
*Subject:* %s

*Message:*
%s`, msg.Name, msg.Email, phone, msg.Subject, msg.Message))

	return nil
}

func (s *contactServiceImpl) SubmitInquiry(ctx context.Context, req *models.InquiryRequest) (*models.CarInquiry, *ServiceError) {
	inquiry := req.ToInquiry()
	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		s.logger.Error("Failed to store car inquiry", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to submit inquiry"}
	}

	s.logger.Info("Car inquiry received",
		zap.String("inquiry_id", inquiry.InquiryID),
		zap.String("car_id", inquiry.CarID),
	)
	return inquiry, nil
}
