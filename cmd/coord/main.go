// Command coord is a command-line interface for the GpxSonar
// coordinate engine. It computes distances and bearings between
// geographic points, projects points along a bearing, and converts
// between geographic and UTM grid coordinates.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fabienroyer/GpxSonar/coord"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	useSphere     bool
	semiMajor     float64
	invFlattening float64
)

func ellipsoid() coord.Ellipsoid {
	return coord.Ellipsoid{A: semiMajor, InvF: invFlattening}
}

var root = &cobra.Command{
	Use:           "coord",
	Short:         "Geodetic distance, bearing, and coordinate conversions",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var distCmd = &cobra.Command{
	Use:   "dist lat1 lon1 lat2 lon2",
	Short: "Distance in meters between two points, with forward and reverse azimuths",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseFloats(args)
		if err != nil {
			return err
		}
		p1 := coord.NewPoint(v[0], v[1])
		p2 := coord.NewPoint(v[2], v[3])
		if useSphere {
			fmt.Printf("%.3f\n", coord.Globe.Distance(p1, p2))
			return nil
		}
		meters, fwd, rev, err := ellipsoid().Inverse(p1, p2)
		if err != nil {
			return err
		}
		fmt.Printf("%.3f %.6f %.6f\n", meters, fwd, rev)
		return nil
	},
}

var projectCmd = &cobra.Command{
	Use:   "project lat lon azimuth meters",
	Short: "Project a point along an azimuth for a distance",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseFloats(args)
		if err != nil {
			return err
		}
		origin := coord.NewPoint(v[0], v[1])
		var dest coord.Point
		if useSphere {
			dest = coord.Globe.Project(origin, v[2], v[3])
		} else {
			dest, err = ellipsoid().Direct(origin, v[2], v[3])
			if err != nil {
				return err
			}
		}
		fmt.Printf("%.8f %.8f\n", dest.Lat, dest.Lon)
		return nil
	},
}

var utmCmd = &cobra.Command{
	Use:   "utm lat lon",
	Short: "Convert a geographic point to UTM grid coordinates",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseFloats(args)
		if err != nil {
			return err
		}
		u, err := ellipsoid().ToUTM(coord.NewPoint(v[0], v[1]))
		if err != nil {
			return err
		}
		fmt.Printf("%d%c E %.0f N %.0f\n", u.Zone, u.Letter, u.Easting, u.Northing)
		return nil
	},
}

var geoCmd = &cobra.Command{
	Use:   "geo zone letter easting northing",
	Short: "Convert UTM grid coordinates to a geographic point",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		zone, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid zone %q: %w", args[0], err)
		}
		letter := strings.ToUpper(args[1])
		if len(letter) != 1 {
			return fmt.Errorf("invalid zone letter %q", args[1])
		}
		v, err := parseFloats(args[2:])
		if err != nil {
			return err
		}
		p, err := ellipsoid().FromUTM(coord.UTM{
			Zone:     zone,
			Letter:   letter[0],
			Easting:  v[0],
			Northing: v[1],
		})
		if err != nil {
			return err
		}
		fmt.Printf("%.8f %.8f\n", p.Lat, p.Lon)
		return nil
	},
}

func parseFloats(args []string) ([]float64, error) {
	vals := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", arg, err)
		}
		vals[i] = v
	}
	return vals, nil
}

func init() {
	root.PersistentFlags().BoolVarP(&useSphere, "sphere", "s", false,
		"use the spherical Earth model instead of the ellipsoid")
	root.PersistentFlags().Float64Var(&semiMajor, "semimajor", coord.WGS84.A,
		"reference ellipsoid semi-major axis in meters")
	root.PersistentFlags().Float64Var(&invFlattening, "invflattening", coord.WGS84.InvF,
		"reference ellipsoid inverse flattening")
	root.AddCommand(distCmd, projectCmd, utmCmd, geoCmd)
}

func main() {
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
