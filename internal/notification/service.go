package notification

type Service interface {
	List(recipientID uint64, limit int) ([]Notification, error)
	MarkRead(recipientID, id uint64) error
	CountUnread(recipientID uint64) (int64, error)
}

type service struct{ repo Repository }

func NewService(r Repository) Service { return &service{repo: r} }

func (s *service) List(recipientID uint64, limit int) ([]Notification, error) {
	return s.repo.List(recipientID, limit)
}

func (s *service) MarkRead(recipientID, id uint64) error {
	return s.repo.MarkRead(recipientID, id)
}

func (s *service) CountUnread(recipientID uint64) (int64, error) {
	return s.repo.CountUnread(recipientID)
}
