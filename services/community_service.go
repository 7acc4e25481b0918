package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"janconnect-be/models"
	"janconnect-be/repository"
)

const (
	feedbackReceivedTitle   = "Feedback Received"
	feedbackReceivedMessage = "Thank you for your feedback. We will review it and respond if necessary."
)

type CommunityService struct {
	store *repository.Store
	now   func() time.Time
}

func NewCommunityService(store *repository.Store) *CommunityService {
	return &CommunityService{store: store, now: time.Now}
}

type PostInput struct {
	Content string `json:"content" validate:"required,max=2000"`
}

func (s *CommunityService) CreatePost(ctx context.Context, actor models.Actor, in PostInput) (*models.Post, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	post := &models.Post{
		ID:        repository.NewID(),
		UserID:    actor.UserID,
		Content:   in.Content,
		CreatedAt: s.now(),
	}
	if err := s.store.Posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

func (s *CommunityService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := s.store.Posts.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

type FeedbackInput struct {
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=2000"`
	Rating  int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

// SubmitFeedback stores feedback. Anonymous feedback is accepted; signed-in
// senders also get an acknowledgement notification.
func (s *CommunityService) SubmitFeedback(ctx context.Context, actor models.Actor, in FeedbackInput) (*models.Feedback, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	fb := &models.Feedback{
		ID:        repository.NewID(),
		UserID:    actor.UserID,
		Subject:   in.Subject,
		Message:   in.Message,
		Rating:    in.Rating,
		CreatedAt: s.now(),
	}
	if err := s.store.Feedback.Create(ctx, fb); err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}

	if actor.Authenticated() {
		err := s.Notify(ctx, actor.UserID, feedbackReceivedTitle, feedbackReceivedMessage, models.NotificationTypeFeedback, fb.ID)
		if err != nil {
			log.Printf("acknowledge feedback %s: %v", fb.ID, err)
		}
	}
	return fb, nil
}

func (s *CommunityService) MyFeedback(ctx context.Context, actor models.Actor) ([]models.Feedback, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	list, err := s.store.Feedback.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	if list == nil {
		list = []models.Feedback{}
	}
	return list, nil
}

// Notify stores an unread in-app notification for userID.
func (s *CommunityService) Notify(ctx context.Context, userID, title, message, kind, relatedID string) error {
	n := &models.Notification{
		ID:        repository.NewID(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      kind,
		RelatedID: relatedID,
		CreatedAt: s.now(),
	}
	if err := s.store.Notifications.Create(ctx, n); err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

func (s *CommunityService) MyNotifications(ctx context.Context, actor models.Actor) ([]models.Notification, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	list, err := s.store.Notifications.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	if list == nil {
		list = []models.Notification{}
	}
	return list, nil
}

// MarkNotificationRead flags one of the caller's notifications as read.
func (s *CommunityService) MarkNotificationRead(ctx context.Context, actor models.Actor, id string) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	n, err := s.store.Notifications.FindByID(ctx, id)
	if err != nil {
		return lookup("notification", id, err)
	}
	if n.UserID != actor.UserID {
		return ErrForbidden
	}
	if n.IsRead {
		return nil
	}
	if err := s.store.Notifications.MarkRead(ctx, id, s.now()); err != nil {
		return lookup("notification", id, err)
	}
	return nil
}
