package main

import (
	"github.com/tjper/spacex/internal/display"
	"github.com/tjper/spacex/internal/spacex"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const descriptionWidth = 60

func newTable() table.Writer {
	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	return w
}

func render(w table.Writer, markdown bool) string {
	if markdown {
		return w.RenderMarkdown()
	}
	return w.Render()
}

func summaryTable(launches []spacex.LaunchSummary, markdown bool) string {
	w := newTable()
	w.AppendHeader(table.Row{"ID", "Mission", "Site", "Date"})
	for _, launch := range launches {
		w.AppendRow(table.Row{
			launch.ID,
			display.Text(launch.MissionName, display.NoMissionName),
			display.Text(launch.SiteName, display.NoData),
			display.DateOr(launch.LaunchDateUTC, display.NoData),
		})
	}
	return render(w, markdown)
}

func savedTable(launches []spacex.LaunchDetail, markdown bool) string {
	w := newTable()
	w.AppendHeader(table.Row{"ID", "Mission", "Site", "Date"})
	for _, launch := range launches {
		w.AppendRow(table.Row{
			launch.ID,
			display.Text(launch.MissionName, display.NoMissionName),
			display.Text(launch.SiteName, display.NoData),
			display.DateOr(launch.LaunchDateUTC, display.NoData),
		})
	}
	w.AppendFooter(table.Row{"", "", "Saved", len(launches)})
	return render(w, markdown)
}

func detailTable(launch spacex.LaunchDetail, saved bool, markdown bool) string {
	savedText := "no"
	if saved {
		savedText = "yes"
	}

	w := newTable()
	w.SetTitle(display.Text(launch.MissionName, display.NoMissionName))
	w.AppendRows([]table.Row{
		{"ID", launch.ID},
		{"Date", display.DateOr(launch.LaunchDateUTC, display.NoData)},
		{"Site", display.Text(launch.SiteName, display.NoData)},
		{"Rocket", display.Text(launch.RocketName, display.NoData)},
		{"Type", display.Text(launch.RocketType, display.NoData)},
		{"Height", display.Meters(launch.RocketHeightM)},
		{"Diameter", display.Meters(launch.RocketDiameterM)},
		{"Mass", display.Kilograms(launch.RocketMassKg)},
		{"Wikipedia", display.Text(launch.WikipediaURL, display.NoData)},
		{"Description", display.Text(launch.Description, display.NoDescription)},
		{"Saved", savedText},
	})
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, WidthMax: descriptionWidth},
	})
	return render(w, markdown)
}
