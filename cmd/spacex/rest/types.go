package rest

import (
	"github.com/tjper/spacex/internal/display"
	"github.com/tjper/spacex/internal/spacex"
)

type LaunchSummary struct {
	ID              string  `json:"id"`
	MissionName     string  `json:"missionName"`
	SiteName        string  `json:"siteName"`
	LaunchDate      string  `json:"launchDate"`
	MissionPatchURL *string `json:"missionPatchUrl"`
}

func LaunchSummariesFromModel(modelLaunches []spacex.LaunchSummary) []LaunchSummary {
	launches := make([]LaunchSummary, 0, len(modelLaunches))
	for _, launch := range modelLaunches {
		launches = append(
			launches,
			LaunchSummary{
				ID:              launch.ID,
				MissionName:     display.Text(launch.MissionName, display.NoMissionName),
				SiteName:        display.Text(launch.SiteName, display.NoData),
				LaunchDate:      display.DateOr(launch.LaunchDateUTC, display.NoData),
				MissionPatchURL: launch.MissionPatchURL,
			},
		)
	}

	return launches
}

type LaunchDetail struct {
	ID              string  `json:"id"`
	MissionName     string  `json:"missionName"`
	SiteName        string  `json:"siteName"`
	LaunchDate      string  `json:"launchDate"`
	Description     string  `json:"description"`
	RocketName      string  `json:"rocketName"`
	RocketType      string  `json:"rocketType"`
	RocketHeight    string  `json:"rocketHeight"`
	RocketDiameter  string  `json:"rocketDiameter"`
	RocketMass      string  `json:"rocketMass"`
	MissionPatchURL *string `json:"missionPatchUrl"`
	WikipediaURL    *string `json:"wikipediaUrl"`
	Saved           bool    `json:"saved"`
}

func LaunchDetailFromModel(launch spacex.LaunchDetail, saved bool) LaunchDetail {
	return LaunchDetail{
		ID:              launch.ID,
		MissionName:     display.Text(launch.MissionName, display.NoMissionName),
		SiteName:        display.Text(launch.SiteName, display.NoData),
		LaunchDate:      display.DateOr(launch.LaunchDateUTC, display.NoData),
		Description:     display.Text(launch.Description, display.NoDescription),
		RocketName:      display.Text(launch.RocketName, display.NoData),
		RocketType:      display.Text(launch.RocketType, display.NoData),
		RocketHeight:    display.Meters(launch.RocketHeightM),
		RocketDiameter:  display.Meters(launch.RocketDiameterM),
		RocketMass:      display.Kilograms(launch.RocketMassKg),
		MissionPatchURL: launch.MissionPatchURL,
		WikipediaURL:    launch.WikipediaURL,
		Saved:           saved,
	}
}

func SavedFromModel(modelLaunches []spacex.LaunchDetail) []LaunchDetail {
	launches := make([]LaunchDetail, 0, len(modelLaunches))
	for _, launch := range modelLaunches {
		launches = append(launches, LaunchDetailFromModel(launch, true))
	}

	return launches
}
