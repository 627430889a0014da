package news

import "time"

// BaselineArticles is the last-resort edition: a fixed illustrative set plus
// hand-authored supplementary entries. This path ignores the requested
// language entirely.
func BaselineArticles() []Article {
	today := time.Now().Format("Jan 2, 2006")

	base := []Article{
		{
			Headline:    "Global Summit Reaches Historic Accord on Climate Action",
			Subheadline: "Nations agree to accelerate renewable energy adoption by 2030.",
			Author:      "Elena Fisher",
			Date:        "2023-10-24",
			Content:     "In a landmark decision today, representatives from over 190 countries signed the 'Green Horizon Treaty'. The agreement outlines ambitious targets for reducing carbon emissions and investing in sustainable infrastructure. Critics argue the timeline is aggressive, but proponents say it's necessary for survival.",
			Summary:     "190+ nations signed the 'Green Horizon Treaty' to cut carbon emissions by 2030. It's aggressive, but necessary. 🌍 #ClimateChange #Future",
			ImageURL:    PlaceholderImage("climate"),
			Category:    CategoryWorld,
			Location:    "Geneva",
		},
		{
			Headline:    "Quantum Computing Breakthrough Announced",
			Subheadline: "New processor capable of solving complex problems in seconds.",
			Author:      "Dr. Alan Smithee",
			Date:        "2023-10-24",
			Content:     "Tech giant Nebula Corp revealed their latest quantum processor, the Q-Core X. Unlike its predecessors, this chip operates at room temperature, paving the way for consumer-grade quantum devices. Analysts predict this could revolutionize cryptography and drug discovery within the decade.",
			Summary:     "Quantum computers just got real! The new Q-Core X works at room temp. Goodbye passwords, hello future! 💻 #Tech #Quantum",
			ImageURL:    PlaceholderImage("quantum"),
			Category:    CategoryTechnology,
			Location:    "San Francisco",
		},
		{
			Headline:    "Markets Rally as Inflation Shows Signs of Cooling",
			Subheadline: "Major indices hit record highs following quarterly reports.",
			Author:      "Marcus Thorne",
			Date:        "2023-10-24",
			Content:     "Wall Street saw a surge of optimism this morning as the latest consumer price index data came in lower than expected. Tech and energy sectors led the charge, with investors growing confident that the central bank may pause interest rate hikes.",
			Summary:     "Stocks are up! 📈 Inflation is cooling down and Wall Street is celebrating. Good news for your wallet? #Finance #Money",
			ImageURL:    PlaceholderImage("market"),
			Category:    CategoryBusiness,
			Location:    "New York",
		},
		{
			Headline:    "Mars Colony Project Enters Phase Two",
			Subheadline: "First permanent habitat modules successfully landed.",
			Author:      "Sarah Jenkins",
			Date:        "2023-10-24",
			Content:     "The International Space Coalition confirmed the successful touchdown of the 'Ares IV' payload. These modules will serve as the living quarters for the first human expedition slated for 2028. The automated systems represent a triumph of engineering and international cooperation.",
			Summary:     "Humans are one step closer to Mars! 🚀 Habitat modules just landed. Packing my bags for 2028. #Space #Mars",
			ImageURL:    PlaceholderImage("mars"),
			Category:    CategoryScience,
			Location:    "Houston",
		},
		{
			Headline:    "Local Artist Wins Prestigious Venice Biennale",
			Subheadline: "Abstract installation pieces capture the imagination of judges.",
			Author:      "Jean Luc",
			Date:        "2023-10-24",
			Content:     "Rising star Isabella Rossini took home the Golden Lion today for her immersive installation 'Echoes of Silence'. The piece, which utilizes sound waves to sculpt mist, has been described as 'hauntingly beautiful' by art critics worldwide.",
			Summary:     "Isabella Rossini just won the Venice Biennale with sound-sculpted mist. Art is evolving. 🎨 #Art #Venice",
			ImageURL:    PlaceholderImage("art"),
			Category:    CategoryArts,
			Location:    "Venice",
		},
	}

	additional := []Article{
		{
			Headline:    "Electric Vehicle Sales Surge Globally",
			Subheadline: "EV adoption accelerates as battery costs drop significantly",
			Author:      "Michael Chen",
			Date:        today,
			Content:     "Global electric vehicle sales have increased by 40% this quarter, driven by falling battery prices and expanding charging infrastructure. Major automakers are ramping up production to meet unprecedented demand.",
			Summary:     "EVs are taking over! Sales up 40% as batteries get cheaper.",
			ImageURL:    PlaceholderImage("ev-cars"),
			Category:    CategoryTechnology,
			Location:    "Detroit",
		},
		{
			Headline:    "World Health Organization Announces New Health Initiative",
			Subheadline: "Global program aims to improve healthcare access in developing nations",
			Author:      "Dr. Lisa Park",
			Date:        today,
			Content:     "The WHO has launched a comprehensive health initiative targeting underserved communities worldwide. The $5 billion program will focus on preventive care, vaccination campaigns, and building sustainable healthcare infrastructure.",
			Summary:     "WHO launches $5B program to bring healthcare to everyone.",
			ImageURL:    PlaceholderImage("health-who"),
			Category:    CategoryScience,
			Location:    "Geneva",
		},
		{
			Headline:    "Tech Giants Report Strong Quarterly Earnings",
			Subheadline: "AI investments drive revenue growth across major companies",
			Author:      "Sarah Williams",
			Date:        today,
			Content:     "Leading technology companies have reported better-than-expected earnings, with AI-related products and services driving significant revenue growth. Analysts predict continued momentum as enterprise adoption accelerates.",
			Summary:     "Big Tech crushing it with AI! Earnings beat expectations.",
			ImageURL:    PlaceholderImage("tech-earnings"),
			Category:    CategoryBusiness,
			Location:    "Silicon Valley",
		},
		{
			Headline:    "International Sports Federation Announces New Tournament",
			Subheadline: "Global competition to feature teams from 50 countries",
			Author:      "James Rodriguez",
			Date:        today,
			Content:     "A new international sports tournament has been announced, bringing together athletes from 50 countries in a month-long competition. The event is expected to draw millions of viewers and boost tourism in host cities.",
			Summary:     "Huge new global tournament coming! 50 countries competing.",
			ImageURL:    PlaceholderImage("sports-tournament"),
			Category:    CategorySports,
			Location:    "Paris",
		},
		{
			Headline:    "Breakthrough in Renewable Energy Storage",
			Subheadline: "New battery technology promises week-long power storage",
			Author:      "Dr. Emily Watson",
			Date:        today,
			Content:     "Scientists have developed a revolutionary battery technology capable of storing renewable energy for extended periods. This breakthrough could solve one of the biggest challenges in transitioning to clean energy sources.",
			Summary:     "Game-changing battery tech could store power for a week!",
			ImageURL:    PlaceholderImage("battery-tech"),
			Category:    CategoryScience,
			Location:    "Boston",
		},
		{
			Headline:    "Major Art Exhibition Opens to Record Crowds",
			Subheadline: "Immersive digital art experience draws global attention",
			Author:      "Alexandra Stone",
			Date:        today,
			Content:     "A groundbreaking digital art exhibition has opened to unprecedented attendance, featuring interactive installations that blend traditional artistry with cutting-edge technology. Critics praise the innovative approach to experiencing art.",
			Summary:     "Mind-blowing digital art show breaking attendance records!",
			ImageURL:    PlaceholderImage("digital-art"),
			Category:    CategoryArts,
			Location:    "Tokyo",
		},
		{
			Headline:    "Global Trade Agreement Reaches Final Stage",
			Subheadline: "Economic pact expected to boost international commerce",
			Author:      "Robert Chang",
			Date:        today,
			Content:     "Negotiations for a major international trade agreement have entered their final phase, with diplomats expressing optimism about reaching a comprehensive deal. The agreement could reshape global commerce patterns for decades.",
			Summary:     "Massive trade deal almost done - could change everything.",
			ImageURL:    PlaceholderImage("trade-deal"),
			Category:    CategoryBusiness,
			Location:    "Brussels",
		},
		{
			Headline:    "Space Agency Reveals Plans for Lunar Base",
			Subheadline: "Permanent moon settlement targeted for next decade",
			Author:      "Dr. Neil Foster",
			Date:        today,
			Content:     "International space agencies have unveiled detailed plans for establishing a permanent human presence on the Moon. The ambitious project involves multiple nations and private companies working together on unprecedented scale.",
			Summary:     "We're building a moon base! Multiple countries teaming up.",
			ImageURL:    PlaceholderImage("moon-base"),
			Category:    CategoryScience,
			Location:    "Houston",
		},
	}

	return append(base, additional...)
}
