package spacex

// LaunchSummary is the lightweight launch record produced by the launch list
// query. Optional fields are nil when the server does not provide them.
type LaunchSummary struct {
	ID              string  `json:"id" msgpack:"id"`
	SiteName        *string `json:"siteName" msgpack:"siteName"`
	MissionName     *string `json:"missionName" msgpack:"missionName"`
	MissionPatchURL *string `json:"missionPatchUrl" msgpack:"missionPatchUrl"`
	LaunchDateUTC   *string `json:"launchDateUtc" msgpack:"launchDateUtc"`
}

// LaunchDetail is the full launch record produced by the launch detail query.
// It is also the record persisted when a launch is saved.
type LaunchDetail struct {
	ID              string   `json:"id" msgpack:"id"`
	SiteName        *string  `json:"siteName" msgpack:"siteName"`
	MissionName     *string  `json:"missionName" msgpack:"missionName"`
	LaunchDateUTC   *string  `json:"launchDateUtc" msgpack:"launchDateUtc"`
	RocketName      *string  `json:"rocketName" msgpack:"rocketName"`
	RocketType      *string  `json:"rocketType" msgpack:"rocketType"`
	RocketHeightM   *float64 `json:"rocketHeightM" msgpack:"rocketHeightM"`
	RocketDiameterM *float64 `json:"rocketDiameterM" msgpack:"rocketDiameterM"`
	RocketMassKg    *float64 `json:"rocketMassKg" msgpack:"rocketMassKg"`
	Description     *string  `json:"description" msgpack:"description"`
	MissionPatchURL *string  `json:"missionPatchUrl" msgpack:"missionPatchUrl"`
	WikipediaURL    *string  `json:"wikipediaUrl" msgpack:"wikipediaUrl"`
}

// --- wire types ---

// The types below mirror the selection sets in graphql/*.graphql. Every
// nested object is a pointer because the schema makes all of them nullable.

type launchesPastData struct {
	LaunchesPast *[]*wireLaunch `json:"launchesPast"`
}

type launchDetailsData struct {
	Launch *wireLaunch `json:"launch"`
}

type wireLaunch struct {
	ID            *string `json:"id"`
	Details       *string `json:"details"`
	MissionName   *string `json:"mission_name"`
	LaunchDateUTC *string `json:"launch_date_utc"`
	LaunchSite    *struct {
		SiteNameLong *string `json:"site_name_long"`
	} `json:"launch_site"`
	Links *struct {
		MissionPatch      *string `json:"mission_patch"`
		MissionPatchSmall *string `json:"mission_patch_small"`
		Wikipedia         *string `json:"wikipedia"`
	} `json:"links"`
	Rocket *struct {
		RocketName *string `json:"rocket_name"`
		RocketType *string `json:"rocket_type"`
		Rocket     *struct {
			Height *struct {
				Meters *float64 `json:"meters"`
			} `json:"height"`
			Diameter *struct {
				Meters *float64 `json:"meters"`
			} `json:"diameter"`
			Mass *struct {
				Kg *float64 `json:"kg"`
			} `json:"mass"`
		} `json:"rocket"`
	} `json:"rocket"`
}

func (l wireLaunch) id() string {
	if l.ID == nil {
		return ""
	}
	return *l.ID
}

func (l wireLaunch) siteName() *string {
	if l.LaunchSite == nil {
		return nil
	}
	return l.LaunchSite.SiteNameLong
}

func (l wireLaunch) toSummary() LaunchSummary {
	summary := LaunchSummary{
		ID:            l.id(),
		SiteName:      l.siteName(),
		MissionName:   l.MissionName,
		LaunchDateUTC: l.LaunchDateUTC,
	}
	if l.Links != nil {
		summary.MissionPatchURL = l.Links.MissionPatchSmall
	}
	return summary
}

func (l wireLaunch) toDetail() LaunchDetail {
	detail := LaunchDetail{
		ID:            l.id(),
		SiteName:      l.siteName(),
		MissionName:   l.MissionName,
		LaunchDateUTC: l.LaunchDateUTC,
		Description:   l.Details,
	}
	if l.Links != nil {
		detail.MissionPatchURL = l.Links.MissionPatch
		detail.WikipediaURL = l.Links.Wikipedia
	}
	if l.Rocket == nil {
		return detail
	}

	detail.RocketName = l.Rocket.RocketName
	detail.RocketType = l.Rocket.RocketType
	if vehicle := l.Rocket.Rocket; vehicle != nil {
		if vehicle.Height != nil {
			detail.RocketHeightM = vehicle.Height.Meters
		}
		if vehicle.Diameter != nil {
			detail.RocketDiameterM = vehicle.Diameter.Meters
		}
		if vehicle.Mass != nil {
			detail.RocketMassKg = vehicle.Mass.Kg
		}
	}
	return detail
}
