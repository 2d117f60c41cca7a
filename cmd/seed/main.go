// Command seed clears the events table and loads it with sample events.
// Bookings are removed along with their events. Intended for development
// and demo environments; do not point it at a database you care about.
package main

import (
	"context"
	"os"
	"time"

	"eventboard/config"
	"eventboard/internal/domain"
	"eventboard/internal/repository/postgres"
)

const seedTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := postgres.OpenDB(cfg.DBUrl)
	if err != nil {
		logger.Error("database init failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	if err := postgres.SeedEvents(ctx, db, sampleEvents()); err != nil {
		logger.Error("seeding failed", "err", err)
		os.Exit(1)
	}
	logger.Info("seeding complete", "events", len(sampleEvents()))
}

// sampleEvents returns the demo fixture set. Slugs and timestamps are filled
// in during seeding.
func sampleEvents() []*domain.Event {
	return []*domain.Event{
		{
			Title:       "ReactDev Hackathon 2027",
			Description: "Join the largest React hackathon where developers worldwide compete to build innovative applications in 48 hours. With $50,000 in prizes, mentorship from React core team members, and opportunities to showcase your projects to leading tech companies.",
			Overview:    "48-hour hackathon focusing on building next-generation React applications with emphasis on performance and user experience.",
			Image:       "https://images.unsplash.com/photo-1515879218367-8466d910aaa4",
			Venue:       "TechSpace Hub",
			Location:    "Austin, TX",
			Date:        "2027-02-15",
			Time:        "09:00",
			Mode:        domain.ModeHybrid,
			Audience:    "React Developers, Frontend Engineers, Full-stack Developers",
			Agenda: []string{
				"Team Formation & Project Ideation",
				"Kickoff & Technical Workshop",
				"48-Hour Coding Sprint",
				"Project Submissions",
				"Demo Day & Judging",
				"Awards Ceremony",
			},
			Organizer: "ReactDev Community",
			Tags:      []string{"Hackathon", "React", "JavaScript", "Frontend", "DevConnect"},
		},
		{
			Title:       "Cloud Native DevOps Summit",
			Description: "Master modern DevOps practices through hands-on workshops covering containerization, CI/CD pipelines, infrastructure as code, and cloud-native technologies. Learn from industry experts and implement best practices in real-time.",
			Overview:    "Intensive three-day workshop series focused on practical DevOps implementation and cloud infrastructure management.",
			Image:       "https://images.unsplash.com/photo-1667372393119-3d4c48d07fc9",
			Venue:       "Cloud Innovation Center",
			Location:    "Seattle, WA",
			Date:        "2027-03-20",
			Time:        "08:30",
			Mode:        domain.ModeOffline,
			Audience:    "DevOps Engineers, System Administrators, Platform Engineers",
			Agenda: []string{
				"Docker & Kubernetes Deep Dive",
				"Building Robust CI/CD Pipelines",
				"Infrastructure as Code with Terraform",
				"Monitoring & Observability",
				"Security in DevOps",
				"Hands-on Labs",
			},
			Organizer: "DevOps Alliance",
			Tags:      []string{"DevOps", "Cloud", "Kubernetes", "Docker", "DevConnect"},
		},
		{
			Title:       "Web3 Builders Conference",
			Description: "Explore the future of web development with Web3 technologies. Deep dive into blockchain development, smart contracts, DeFi protocols, and decentralized applications. Network with leading Web3 developers and founders.",
			Overview:    "Premier conference for Web3 developers featuring cutting-edge blockchain development topics and emerging standards.",
			Image:       "https://images.unsplash.com/photo-1639762681485-074b7f938ba0",
			Venue:       "Blockchain Center",
			Location:    "Miami, FL",
			Date:        "2027-04-10",
			Time:        "10:00",
			Mode:        domain.ModeHybrid,
			Audience:    "Blockchain Developers, Smart Contract Engineers, Web3 Enthusiasts",
			Agenda: []string{
				"State of Web3 Development",
				"Smart Contract Security",
				"DeFi Protocol Development",
				"NFT Platform Building",
				"Scaling Solutions Workshop",
				"Web3 Security Best Practices",
			},
			Organizer: "Web3 Builders Alliance",
			Tags:      []string{"Web3", "Blockchain", "Smart Contracts", "DeFi", "DevConnect"},
		},
		{
			Title:       "AI & ML Developer Conference",
			Description: "Join leading AI researchers and ML engineers for an intensive conference on practical machine learning development. From neural networks to deployment strategies, gain hands-on experience with the latest AI tools and frameworks.",
			Overview:    "Deep technical conference focused on practical AI/ML development and deployment strategies.",
			Image:       "https://images.unsplash.com/photo-1485827404703-89b55fcc595e",
			Venue:       "Innovation Campus",
			Location:    "Boston, MA",
			Date:        "2027-05-12",
			Time:        "09:00",
			Mode:        domain.ModeHybrid,
			Audience:    "ML Engineers, Data Scientists, AI Researchers, Software Engineers",
			Agenda: []string{
				"Deep Learning Architecture Design",
				"MLOps Best Practices",
				"Large Language Models Workshop",
				"AI Model Optimization",
				"Responsible AI Development",
				"Model Deployment Strategies",
			},
			Organizer: "AI Developers Association",
			Tags:      []string{"AI", "Machine Learning", "Deep Learning", "MLOps", "DevConnect"},
		},
		{
			Title:       "Backend Engineering Summit",
			Description: "Comprehensive conference covering modern backend development practices, from microservices architecture to scalable database solutions. Learn about performance optimization, security, and maintaining high-availability systems.",
			Overview:    "In-depth technical conference for backend developers focusing on scalability, performance, and modern architectures.",
			Image:       "https://images.unsplash.com/photo-1558494949-ef010cbdcc31",
			Venue:       "Tech Convention Center",
			Location:    "Portland, OR",
			Date:        "2027-06-18",
			Time:        "08:30",
			Mode:        domain.ModeOffline,
			Audience:    "Backend Developers, System Architects, Database Engineers",
			Agenda: []string{
				"Microservices Architecture Patterns",
				"Database Scaling Strategies",
				"API Design Best Practices",
				"Performance Optimization",
				"Security Implementation",
				"High Availability Systems",
			},
			Organizer: "Backend Dev Community",
			Tags:      []string{"Backend", "Microservices", "Databases", "System Design", "DevConnect"},
		},
		{
			Title:       "Mobile Dev Experience",
			Description: "The ultimate mobile development conference covering iOS, Android, and cross-platform development. Focus on performance, user experience, and the latest mobile technologies with hands-on workshops and coding sessions.",
			Overview:    "Comprehensive mobile development conference bringing together iOS, Android, and cross-platform developers.",
			Image:       "https://images.unsplash.com/photo-1512941937669-90a1b58e7e9c",
			Venue:       "Mobile Tech Center",
			Location:    "San Diego, CA",
			Date:        "2027-07-22",
			Time:        "09:30",
			Mode:        domain.ModeHybrid,
			Audience:    "Mobile Developers, UX Engineers, App Architects",
			Agenda: []string{
				"Native vs Cross-platform Development",
				"Mobile Performance Optimization",
				"App Security Workshop",
				"UI/UX Best Practices",
				"State Management Patterns",
				"App Store Optimization",
			},
			Organizer: "Mobile Developers Guild",
			Tags:      []string{"Mobile", "iOS", "Android", "Cross-platform", "DevConnect"},
		},
	}
}
