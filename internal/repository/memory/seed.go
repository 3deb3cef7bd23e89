package memory

import (
	"context"

	"reelhire-backend/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// Stores bundles the in-memory repositories for one application instance.
type Stores struct {
	Users        domain.UserRepository
	Videos       domain.VideoRepository
	Applications domain.ApplicationRepository
	Comments     domain.CommentRepository
	Messages     domain.MessageRepository
	Bookmarks    domain.BookmarkRepository
}

// NewStores creates a fresh, empty set of in-memory repositories.
func NewStores() *Stores {
	return &Stores{
		Users:        NewUserRepository(),
		Videos:       NewVideoRepository(),
		Applications: NewApplicationRepository(),
		Comments:     NewCommentRepository(),
		Messages:     NewMessageRepository(),
		Bookmarks:    NewBookmarkRepository(),
	}
}

// Seed fills the stores with the demo data set: two employers with job
// openings, two job seekers with video resumes, and a little activity
// between them.
func (s *Stores) Seed(ctx context.Context) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	password := string(hash)

	employer1 := &domain.User{
		Username: "techcorp",
		Password: password,
		Email:    "hiring@techcorp.com",
		FullName: "TechCorp Inc.",
		Headline: ptr("Leading Technology Company"),
		Bio:      ptr("We build innovative software solutions for businesses worldwide."),
		Location: ptr("San Francisco, CA"),
		UserType: domain.UserTypeEmployer,

		CompanyName: ptr("TechCorp"),
		CompanyLogo: ptr("https://via.placeholder.com/150"),
	}
	employer2 := &domain.User{
		Username: "innovatedesign",
		Password: password,
		Email:    "careers@innovatedesign.com",
		FullName: "Innovate Design",
		Headline: ptr("Creative Design Agency"),
		Bio:      ptr("Award-winning design studio specializing in digital experiences."),
		Location: ptr("New York, NY"),
		UserType: domain.UserTypeEmployer,

		CompanyName: ptr("Innovate Design"),
		CompanyLogo: ptr("https://via.placeholder.com/150"),
	}
	seeker1 := &domain.User{
		Username: "sarahjohnson",
		Password: password,
		Email:    "sarah@example.com",
		FullName: "Sarah Johnson",
		Headline: ptr("Full Stack Developer"),
		Bio:      ptr("Passionate full stack developer with 4+ years of experience building scalable web applications."),
		Location: ptr("San Francisco, CA"),
		UserType: domain.UserTypeJobSeeker,
		Skills:   []string{"JavaScript", "React", "Node.js", "MongoDB"},
	}
	seeker2 := &domain.User{
		Username: "michaelwilson",
		Password: password,
		Email:    "michael@example.com",
		FullName: "Michael Wilson",
		Headline: ptr("UX/UI Designer"),
		Bio:      ptr("Creative designer focused on creating intuitive user experiences."),
		Location: ptr("Seattle, WA"),
		UserType: domain.UserTypeJobSeeker,
		Skills:   []string{"UI Design", "Figma", "User Research", "Prototyping"},
	}
	for _, u := range []*domain.User{employer1, employer2, seeker1, seeker2} {
		if err := s.Users.Create(ctx, u); err != nil {
			return err
		}
	}

	job1 := &domain.Video{
		UserID:      employer1.ID,
		Title:       "Senior Software Engineer",
		Description: ptr("We're looking for a passionate Senior Software Engineer to join our growing team!"),
		VideoURL:    "https://storage.googleapis.com/webfundamentals-assets/videos/chrome.mp4",
		VideoType:   domain.VideoTypeJob,
		Skills:      []string{"React", "Node.js", "AWS"},
		Salary:      ptr("$120-150k"),
		Location:    ptr("Remote"),
		JobType:     ptr("Full-time"),
		Duration:    intPtr(58),
	}
	job2 := &domain.Video{
		UserID:      employer2.ID,
		Title:       "UX Designer",
		Description: ptr("Join our creative team to design beautiful digital experiences."),
		VideoURL:    "https://storage.googleapis.com/webfundamentals-assets/videos/chrome.mp4",
		VideoType:   domain.VideoTypeJob,
		Skills:      []string{"UI Design", "Figma", "User Research"},
		Salary:      ptr("$90-120k"),
		Location:    ptr("New York, NY"),
		JobType:     ptr("Full-time"),
		Duration:    intPtr(45),
	}
	resume1 := &domain.Video{
		UserID:       seeker1.ID,
		Title:        "My Skills & Experience",
		Description:  ptr("Here's a brief overview of my skills, experience, and what I can bring to your team."),
		VideoURL:     "https://example.com/videos/sarah-resume.mp4",
		ThumbnailURL: ptr("https://via.placeholder.com/300x500"),
		VideoType:    domain.VideoTypeResume,
		Skills:       []string{"JavaScript", "React", "Node.js", "MongoDB"},
		Duration:     intPtr(58),
	}
	resume2 := &domain.Video{
		UserID:       seeker2.ID,
		Title:        "UX Design Portfolio",
		Description:  ptr("A walkthrough of my recent design projects and my approach to solving user problems."),
		VideoURL:     "https://example.com/videos/michael-resume.mp4",
		ThumbnailURL: ptr("https://via.placeholder.com/300x500"),
		VideoType:    domain.VideoTypeResume,
		Skills:       []string{"UI Design", "Figma", "User Research", "Prototyping"},
		Duration:     intPtr(52),
	}
	for _, v := range []*domain.Video{job1, job2, resume1, resume2} {
		if err := s.Videos.Create(ctx, v); err != nil {
			return err
		}
	}

	apps := []*domain.Application{
		{
			JobVideoID:  job1.ID,
			UserVideoID: resume1.ID,
			UserID:      seeker1.ID,
			EmployerID:  employer1.ID,
			Status:      domain.ApplicationStatusPending,
			Note:        ptr("I'm very interested in this position and believe my skills are a perfect match."),
		},
		{
			JobVideoID:  job2.ID,
			UserVideoID: resume2.ID,
			UserID:      seeker2.ID,
			EmployerID:  employer2.ID,
			Status:      domain.ApplicationStatusViewed,
			Note:        ptr("I'm excited about the opportunity to join your creative team."),
		},
	}
	for _, a := range apps {
		if err := s.Applications.Create(ctx, a); err != nil {
			return err
		}
	}

	comments := []*domain.Comment{
		{
			VideoID: job1.ID,
			UserID:  seeker1.ID,
			Content: "This looks like an exciting opportunity! What tech stack does your team use?",
		},
		{
			VideoID: resume1.ID,
			UserID:  employer1.ID,
			Content: "Impressive skills! I'd like to learn more about your experience with MongoDB.",
		},
	}
	for _, c := range comments {
		if err := s.Comments.Create(ctx, c); err != nil {
			return err
		}
		if _, err := s.Videos.IncrementStat(ctx, c.VideoID, domain.StatComments); err != nil {
			return err
		}
	}

	messages := []*domain.Message{
		{
			SenderID:   employer1.ID,
			ReceiverID: seeker1.ID,
			Content:    "Hi Sarah, we liked your application. Would you be available for an interview next week?",
		},
		{
			SenderID:   seeker1.ID,
			ReceiverID: employer1.ID,
			Content:    "Yes, I'm available. I'd be happy to schedule an interview. What times work for you?",
		},
	}
	for _, m := range messages {
		if err := s.Messages.Create(ctx, m); err != nil {
			return err
		}
	}

	for _, b := range []*domain.Bookmark{
		{UserID: seeker1.ID, VideoID: job1.ID},
		{UserID: seeker2.ID, VideoID: job2.ID},
	} {
		if _, err := s.Bookmarks.Create(ctx, b); err != nil {
			return err
		}
	}

	return nil
}

func ptr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
