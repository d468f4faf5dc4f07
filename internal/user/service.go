package user

type Service interface {
	GetByID(id uint64) (*User, error)
	GetByHandle(handle string) (*User, error)
	UpdateProfile(id uint64, in UpdateReq) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(r Repository) Service {
	return &service{repo: r}
}

func (s *service) GetByID(id uint64) (*User, error) {
	return s.repo.FindByID(id)
}

func (s *service) GetByHandle(handle string) (*User, error) {
	return s.repo.FindByHandle(handle)
}

func (s *service) UpdateProfile(id uint64, in UpdateReq) (*User, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		existing.Name = in.Name
	}
	if in.Bio != "" {
		existing.Bio = in.Bio
	}
	if in.Location != "" {
		existing.Location = in.Location
	}
	if in.Website != "" {
		existing.Website = in.Website
	}
	if in.Image != "" {
		existing.Image = in.Image
	}
	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}
